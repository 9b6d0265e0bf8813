package domain

import "time"

// SlotRecord describes the last stored state of a cache slot.
type SlotRecord struct {
	Slot     string       `json:"slot,omitzero"`
	Path     string       `json:"path,omitzero"`
	Files    int          `json:"files,omitzero"`
	Bytes    int64        `json:"bytes,omitzero"`
	Digest   string       `json:"digest,omitzero"`
	StoredAt time.Time    `json:"stored_at,omitzero"`
	Entries  []StoredFile `json:"entries,omitzero"`
}

// StoredFile keeps the timestamps a file had in the working tree when it was stored,
// so that a later load can restore least-recently-used ordering.
type StoredFile struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	AccessTime time.Time `json:"atime"`
	ModTime    time.Time `json:"mtime"`
}

// Times returns the recorded timestamps keyed by slot-relative path.
func (r *SlotRecord) Times() map[string]StoredFile {
	out := make(map[string]StoredFile, len(r.Entries))
	for _, e := range r.Entries {
		out[e.Path] = e
	}
	return out
}
