package eviction

import (
	"context"
	"errors"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/dustin/go-humanize"
	"go.trai.ch/zerr"
)

// Report summarizes one enforcement pass.
type Report struct {
	Root        string
	Budget      domain.Budget
	Scanned     int
	Planned     int
	Removed     int
	BytesBefore int64
	BytesFreed  int64
}

// Remaining returns the bytes left under the root after enforcement.
func (r Report) Remaining() int64 {
	return r.BytesBefore - r.BytesFreed
}

// Policy keeps a directory tree within a byte budget.
type Policy struct {
	indexer ports.FileIndexer
	remover ports.FileRemover
	logger  ports.Logger
}

// NewPolicy creates a new Policy.
func NewPolicy(indexer ports.FileIndexer, remover ports.FileRemover, logger ports.Logger) *Policy {
	return &Policy{
		indexer: indexer,
		remover: remover,
		logger:  logger,
	}
}

// Enforce scans root and deletes least recently used files until its total size is within budget.
// Files that disappear between the scan and their deletion count as removed.
// Cancellation is observed between deletions; files deleted before it stay deleted.
func (p *Policy) Enforce(ctx context.Context, root string, budget domain.Budget) (Report, error) {
	report := Report{Root: root, Budget: budget}

	if err := budget.Validate(); err != nil {
		return report, err
	}

	index, err := p.indexer.Scan(root)
	if err != nil {
		return report, err
	}
	report.Scanned = index.Len()
	report.BytesBefore = index.TotalSize

	plan := Plan(index.Entries, index.TotalSize, budget)
	report.Planned = len(plan)
	if len(plan) == 0 {
		p.logger.Debug("cache within budget",
			"root", root,
			"size", humanize.IBytes(uint64(index.TotalSize)), //nolint:gosec // Sizes are non-negative
			"budget", humanize.IBytes(uint64(budget)), //nolint:gosec // Budget is validated
		)
		return report, nil
	}

	for _, entry := range plan {
		if err := ctx.Err(); err != nil {
			return report, errors.Join(domain.ErrEvictionFailed, zerr.With(zerr.Wrap(err, "eviction interrupted"), "root", root))
		}

		if err := p.remover.Remove(entry.Path); err != nil {
			return report, errors.Join(domain.ErrEvictionFailed, zerr.With(err, "root", root))
		}
		report.Removed++
		report.BytesFreed += entry.Size
	}

	p.logger.Info("evicted stale cache files",
		"root", root,
		"files", report.Removed,
		"freed", humanize.IBytes(uint64(report.BytesFreed)), //nolint:gosec // Sizes are non-negative
		"remaining", humanize.IBytes(uint64(report.Remaining())), //nolint:gosec // Sizes are non-negative
	)

	return report, nil
}
