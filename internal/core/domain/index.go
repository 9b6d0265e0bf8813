package domain

import "time"

// FileEntry describes one regular file found while indexing a slot.
type FileEntry struct {
	Path       string
	Size       int64
	AccessTime time.Time
}

// Index is the result of scanning a directory tree.
// Entries are ordered oldest access first, ties broken by path.
type Index struct {
	Root      string
	Entries   []FileEntry
	TotalSize int64
}

// Len returns the number of indexed files.
func (i Index) Len() int {
	return len(i.Entries)
}
