// Package bundler reads the resolved gem set of an application from its Gemfile.lock.
package bundler

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// LockfileName is the bundler lockfile looked up in the build directory.
const LockfileName = "Gemfile.lock"

var _ ports.GemInspector = (*Lockfile)(nil)

// Lockfile implements ports.GemInspector by parsing Gemfile.lock.
type Lockfile struct{}

// NewLockfile creates a new Lockfile inspector.
func NewLockfile() *Lockfile {
	return &Lockfile{}
}

// GemVersion returns the locked version of name. A missing lockfile means the gem is absent.
func (l *Lockfile) GemVersion(buildDir, name string) (domain.GemVersion, bool, error) {
	specs, err := l.read(buildDir)
	if err != nil {
		return domain.GemVersion{}, false, err
	}

	raw, ok := specs[name]
	if !ok {
		return domain.GemVersion{}, false, nil
	}

	v, err := domain.ParseGemVersion(raw)
	if err != nil {
		return domain.GemVersion{}, false, zerr.With(err, "gem", name)
	}
	return v, true, nil
}

// HasGem reports whether name is part of the locked bundle.
func (l *Lockfile) HasGem(buildDir, name string) (bool, error) {
	specs, err := l.read(buildDir)
	if err != nil {
		return false, err
	}
	_, ok := specs[name]
	return ok, nil
}

func (l *Lockfile) read(buildDir string) (map[string]string, error) {
	path := filepath.Join(buildDir, LockfileName)

	f, err := os.Open(path) //nolint:gosec // Path is built from the build directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open lockfile"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	specs, err := ParseSpecs(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return specs, nil
}

// ParseSpecs returns the name and locked version of every top-level spec in a lockfile.
// Platform suffixes such as "-x86_64-linux" are dropped from versions.
func ParseSpecs(r io.Reader) (map[string]string, error) {
	specs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	inSpecs := false

	for scanner.Scan() {
		line := scanner.Text()

		if line != "" && !strings.HasPrefix(line, " ") {
			// A new top-level section such as GEM, GIT, PATH or PLATFORMS.
			inSpecs = false
			continue
		}
		if strings.TrimSpace(line) == "specs:" {
			inSpecs = true
			continue
		}
		if !inSpecs {
			continue
		}

		// Specs sit at four spaces; their own dependencies are indented further.
		if !strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "     ") {
			continue
		}

		name, version, ok := parseSpecLine(strings.TrimSpace(line))
		if ok {
			specs[name] = version
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}
	return specs, nil
}

func parseSpecLine(line string) (name, version string, ok bool) {
	name, rest, found := strings.Cut(line, " (")
	if !found || !strings.HasSuffix(rest, ")") {
		return "", "", false
	}
	version = strings.TrimSuffix(rest, ")")
	if base, _, hasPlatform := strings.Cut(version, "-"); hasPlatform {
		version = base
	}
	return name, version, name != "" && version != ""
}
