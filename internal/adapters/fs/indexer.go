package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"slices"
	"strings"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileIndexer = (*Indexer)(nil)

// Indexer builds size and access-time indexes of directory trees.
type Indexer struct {
	walker *Walker
}

// NewIndexer creates a new Indexer.
func NewIndexer(walker *Walker) *Indexer {
	return &Indexer{walker: walker}
}

// Scan indexes every regular file under root, oldest access first with ties broken by path.
// The tree is only read, never modified.
func (i *Indexer) Scan(root string) (domain.Index, error) {
	index := domain.Index{Root: root}

	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return index, nil
		}
		return index, errors.Join(domain.ErrIndexFailed, zerr.With(zerr.Wrap(err, "failed to stat root"), "root", root))
	}

	err := i.walker.Walk(root, func(path string, info os.FileInfo) error {
		index.Entries = append(index.Entries, domain.FileEntry{
			Path:       path,
			Size:       info.Size(),
			AccessTime: AccessTime(info),
		})
		index.TotalSize += info.Size()
		return nil
	})
	if err != nil {
		return domain.Index{Root: root}, errors.Join(domain.ErrIndexFailed, zerr.With(err, "root", root))
	}

	slices.SortStableFunc(index.Entries, func(a, b domain.FileEntry) int {
		if c := a.AccessTime.Compare(b.AccessTime); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})

	return index, nil
}
