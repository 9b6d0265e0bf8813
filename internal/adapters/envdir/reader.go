// Package envdir reads platform environment directories, where each file holds one variable.
package envdir

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Blocked lists variables that are never imported because they would change how the build itself runs.
var Blocked = map[string]struct{}{
	"PATH":         {},
	"GIT_DIR":      {},
	"CPATH":        {},
	"CPPATH":       {},
	"LD_PRELOAD":   {},
	"LIBRARY_PATH": {},
}

var _ ports.EnvReader = (*Reader)(nil)

// Reader implements ports.EnvReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns one variable per regular file in dir, with trailing newlines removed.
func (r *Reader) Read(dir string) (map[string]string, error) {
	env := make(map[string]string)
	if dir == "" {
		return env, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return env, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read env directory"), "path", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if _, blocked := Blocked[name]; blocked {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) //nolint:gosec // Path is built from the env directory
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
		}
		env[name] = strings.TrimRight(string(data), "\r\n")
	}
	return env, nil
}
