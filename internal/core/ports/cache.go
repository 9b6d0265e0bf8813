// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

// BuildCache persists slot directories across builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BuildCache interface {
	// Load copies the stored contents of slot into the working tree.
	// It is a no-op when nothing has been stored for the slot yet.
	Load(ctx context.Context, slot domain.Slot) error

	// Store replaces the stored contents of slot with the current working tree contents.
	Store(ctx context.Context, slot domain.Slot) error

	// Clear removes the stored contents of slot.
	Clear(ctx context.Context, slot domain.Slot) error

	// Status returns the ledger records of every stored slot.
	Status(ctx context.Context) ([]domain.SlotRecord, error)

	// Purge clears every recorded slot and removes any stored contents that have no record.
	// It returns the names of what was removed.
	Purge(ctx context.Context) ([]string, error)
}

// CacheOpener binds a BuildCache to a build directory and a persistent cache directory.
type CacheOpener interface {
	Open(buildDir, cacheDir string) (BuildCache, error)
}

// SlotLedger records metadata about stored slots.
type SlotLedger interface {
	// Get returns the record for a slot, or nil if the slot has never been stored.
	Get(slot string) (*domain.SlotRecord, error)

	// Put saves a record, replacing any previous one for the same slot.
	Put(record domain.SlotRecord) error

	// Delete forgets a slot.
	Delete(slot string) error

	// List returns all records ordered by slot name.
	List() ([]domain.SlotRecord, error)
}
