package domain

import "go.trai.ch/zerr"

var (
	// ErrCompileFailed is returned when the asset compile task reports failure.
	ErrCompileFailed = zerr.New("asset precompilation failed")

	// ErrCompileCancelled is returned when the compile task is cancelled or times out.
	ErrCompileCancelled = zerr.New("asset precompilation cancelled")

	// ErrCacheStorage is returned when the persistent cache cannot be read or written.
	ErrCacheStorage = zerr.New("cache storage unavailable")

	// ErrInvalidBudget is returned when an eviction budget is negative.
	ErrInvalidBudget = zerr.New("eviction budget must not be negative")

	// ErrInvalidSlot is returned when a slot has no name or an unsafe path.
	ErrInvalidSlot = zerr.New("invalid cache slot")

	// ErrSlotNotFound is returned when a slot name is not part of the active plan.
	ErrSlotNotFound = zerr.New("cache slot not found")

	// ErrIndexFailed is returned when a directory tree cannot be scanned.
	ErrIndexFailed = zerr.New("failed to index directory")

	// ErrEvictionFailed is returned when a planned file cannot be removed.
	ErrEvictionFailed = zerr.New("failed to evict stale file")

	// ErrNoFrameworkDetected is returned when no framework strategy matches the build directory.
	ErrNoFrameworkDetected = zerr.New("no supported framework detected")

	// ErrConfigLoadFailed is returned when the configuration cannot be read or decoded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrHookFailed is returned when a host hook command exits unsuccessfully.
	ErrHookFailed = zerr.New("hook command failed")

	// ErrTaskLookupFailed is returned when the task list cannot be read from the task runner.
	ErrTaskLookupFailed = zerr.New("failed to list tasks")

	// ErrLedgerReadFailed is returned when the slot ledger cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read slot ledger")

	// ErrLedgerWriteFailed is returned when the slot ledger cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write slot ledger")

	// ErrInvalidGemVersion is returned when a gem version string cannot be parsed.
	ErrInvalidGemVersion = zerr.New("invalid gem version")
)
