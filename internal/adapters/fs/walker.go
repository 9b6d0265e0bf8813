// Package fs provides file system adapters for indexing, removing and locating files in a build tree.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// WalkFunc is called for every regular file reached by a Walker.
// The path is the one through which the file was reached; info describes the link target.
type WalkFunc func(path string, info os.FileInfo) error

// Walker walks directory trees following symbolic links.
// Each physical file or directory is visited at most once per walk, so link cycles terminate.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk calls fn for every regular file under root. Dangling links are skipped.
// Entries inside a directory are visited in lexical order. Links are followed only
// after every path without a link has been walked, so a file reachable both ways is
// reported under its own path rather than through the link.
func (w *Walker) Walk(root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat walk root"), "path", root)
	}

	t := &traversal{
		visited: make(map[fileIdentity]struct{}),
		fn:      fn,
	}
	if err := t.visit(root, info); err != nil {
		return err
	}

	for len(t.links) > 0 {
		link := t.links[0]
		t.links = t.links[1:]

		linkInfo, err := os.Stat(link)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, "failed to stat link"), "path", link)
		}
		if err := t.visit(link, linkInfo); err != nil {
			return err
		}
	}

	return nil
}

type traversal struct {
	visited map[fileIdentity]struct{}
	links   []string
	fn      WalkFunc
}

func (t *traversal) visit(path string, info os.FileInfo) error {
	id := identityOf(path, info)
	if _, seen := t.visited[id]; seen {
		return nil
	}
	t.visited[id] = struct{}{}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil
		}
		return t.fn(path, info)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.Type()&iofs.ModeSymlink != 0 {
			t.links = append(t.links, child)
			continue
		}

		childInfo, err := os.Stat(child)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, "failed to stat entry"), "path", child)
		}

		if err := t.visit(child, childInfo); err != nil {
			return err
		}
	}

	return nil
}
