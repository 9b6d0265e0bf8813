// Package eviction trims a directory tree to a byte budget by deleting its least recently used files.
package eviction

import "github.com/Prelang/prelang-buildpack/internal/core/domain"

// Plan returns the shortest oldest-first prefix of entries whose removal brings totalSize within budget.
// Entries must already be ordered oldest access first. The result is empty when totalSize fits the budget.
func Plan(entries []domain.FileEntry, totalSize int64, budget domain.Budget) []domain.FileEntry {
	limit := int64(budget)
	if totalSize <= limit {
		return nil
	}

	remaining := totalSize
	n := 0
	for n < len(entries) && remaining > limit {
		remaining -= entries[n].Size
		n++
	}

	plan := make([]domain.FileEntry, n)
	copy(plan, entries[:n])
	return plan
}
