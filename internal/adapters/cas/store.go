// Package cas implements the slot ledger that records what each cache slot last stored.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/zerr"
)

const (
	// LedgerDir is the cache directory entry reserved for buildpack metadata.
	LedgerDir = ".prelang"

	// DefaultLedgerPath is where the ledger lives inside a cache directory.
	DefaultLedgerPath = LedgerDir + "/slots.json"
)

var _ ports.SlotLedger = (*Store)(nil)

// Store implements ports.SlotLedger using a flat JSON file on a billy filesystem.
type Store struct {
	fs    billy.Filesystem
	path  string
	mu    sync.RWMutex
	cache map[string]domain.SlotRecord
}

// NewStore creates a new ledger backed by the file at the given path inside fsys.
func NewStore(fsys billy.Filesystem, file string) (*Store, error) {
	s := &Store{
		fs:    fsys,
		path:  path.Clean(file),
		cache: make(map[string]domain.SlotRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := util.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrLedgerReadFailed, zerr.With(zerr.Wrap(err, "failed to read slot ledger"), "path", s.path))
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrLedgerReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal slot ledger"), "path", s.path))
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.Wrap(err, "failed to marshal slot ledger"))
	}

	if err := s.fs.MkdirAll(path.Dir(s.path), 0o750); err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.Wrap(err, "failed to create directory for slot ledger"))
	}

	tmp := s.path + ".tmp"
	if err := util.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.With(zerr.Wrap(err, "failed to write slot ledger"), "path", tmp))
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.With(zerr.Wrap(err, "failed to replace slot ledger"), "path", s.path))
	}

	return nil
}

// Get retrieves the record for a given slot.
func (s *Store) Get(slot string) (*domain.SlotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[slot]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record.
func (s *Store) Put(record domain.SlotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.cache[record.Slot]
	s.cache[record.Slot] = record
	if err := s.save(); err != nil {
		if had {
			s.cache[record.Slot] = prev
		} else {
			delete(s.cache, record.Slot)
		}
		return err
	}
	return nil
}

// Delete removes the record for a slot. Deleting an unknown slot is not an error.
func (s *Store) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.cache[slot]
	if !ok {
		return nil
	}
	delete(s.cache, slot)
	if err := s.save(); err != nil {
		s.cache[slot] = prev
		return err
	}
	return nil
}

// List returns every record ordered by slot name.
func (s *Store) List() ([]domain.SlotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.SlotRecord, 0, len(s.cache))
	for _, record := range s.cache {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b domain.SlotRecord) int {
		return strings.Compare(a.Slot, b.Slot)
	})
	return records, nil
}
