package fs

import (
	"path/filepath"
	"sort"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLocator = (*Globber)(nil)

// Globber implements the ManifestLocator interface using filepath.Glob.
type Globber struct{}

// NewGlobber creates a new Globber.
func NewGlobber() *Globber {
	return &Globber{}
}

// Find returns the lexically first path under root that matches pattern, or "" when nothing matches.
func (g *Globber) Find(root, pattern string) (string, error) {
	path := filepath.Join(root, pattern)

	matches, err := filepath.Glob(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", path)
	}
	if len(matches) == 0 {
		return "", nil
	}

	sort.Strings(matches)
	return matches[0], nil
}
