package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileRemover = (*Remover)(nil)

// Remover deletes files from the working tree.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes path. A file that has already disappeared counts as removed.
func (r *Remover) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}
