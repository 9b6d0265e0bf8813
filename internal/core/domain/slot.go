package domain

import (
	"path/filepath"
	"strings"
)

// Slot is a named directory tree mirrored between the working build tree and the persistent store.
// Path is relative; the working copy lives at <buildDir>/<Path> and the stored copy at <storeRoot>/<Path>.
type Slot struct {
	Name string
	Path string
}

// NewSlot creates a slot whose name is its path, which is how the asset pipeline refers to them.
func NewSlot(path string) Slot {
	return Slot{Name: path, Path: path}
}

// WorkingPath returns the slot's location inside the given build directory.
func (s Slot) WorkingPath(buildDir string) string {
	return filepath.Join(buildDir, filepath.FromSlash(s.Path))
}

// Validate checks that the slot is named and stays inside its root.
func (s Slot) Validate() error {
	if s.Name == "" || s.Path == "" {
		return ErrInvalidSlot
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(s.Path)))
	if clean == "." || filepath.IsAbs(s.Path) || clean == ".." || strings.HasPrefix(clean, "../") {
		return ErrInvalidSlot
	}
	return nil
}

// String returns the slot name.
func (s Slot) String() string {
	return s.Name
}
