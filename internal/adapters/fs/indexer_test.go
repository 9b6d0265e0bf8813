package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int, atime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	require.NoError(t, os.Chtimes(path, atime, atime))
}

func TestIndexer_Scan_MissingRoot(t *testing.T) {
	indexer := fs.NewIndexer(fs.NewWalker())

	index, err := indexer.Scan(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, index.Entries)
	assert.Zero(t, index.TotalSize)
}

func TestIndexer_Scan_OrdersByAccessTimeThenPath(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	writeFile(t, filepath.Join(root, "c.css"), 30, base.Add(2*time.Hour))
	writeFile(t, filepath.Join(root, "nested", "deep", "b.js"), 20, base)
	writeFile(t, filepath.Join(root, "a.js"), 10, base)

	index, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)
	require.Len(t, index.Entries, 3)

	assert.Equal(t, filepath.Join(root, "a.js"), index.Entries[0].Path)
	assert.Equal(t, filepath.Join(root, "nested", "deep", "b.js"), index.Entries[1].Path)
	assert.Equal(t, filepath.Join(root, "c.css"), index.Entries[2].Path)
	assert.Equal(t, int64(60), index.TotalSize)
	assert.True(t, index.Entries[0].AccessTime.Equal(base))
}

func TestIndexer_Scan_TotalMatchesSum(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, size := range []int{1, 7, 0, 4096, 13} {
		writeFile(t, filepath.Join(root, "d", string(rune('a'+i))), size, base.Add(time.Duration(i)*time.Second))
	}

	index, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)

	var sum int64
	for _, e := range index.Entries {
		sum += e.Size
	}
	assert.Equal(t, index.TotalSize, sum)
	assert.Equal(t, 5, index.Len())
}

func TestIndexer_Scan_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dir", "file.txt"), 5, time.Now())
	require.NoError(t, os.Symlink("..", filepath.Join(root, "dir", "loop")))
	require.NoError(t, os.Symlink(root, filepath.Join(root, "self")))

	index, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)
	require.Len(t, index.Entries, 1)
	assert.Equal(t, int64(5), index.TotalSize)
}

func TestIndexer_Scan_FollowsLinksOnce(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "shared", "lib.js"), 11, time.Now())
	writeFile(t, filepath.Join(root, "a.txt"), 3, time.Now())

	require.NoError(t, os.Symlink(filepath.Join(outside, "shared"), filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "dangling")))

	index, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)

	paths := make([]string, 0, len(index.Entries))
	for _, e := range index.Entries {
		paths = append(paths, e.Path)
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "linked", "lib.js"),
	}, paths)
	assert.Equal(t, int64(14), index.TotalSize)
}

func TestIndexer_Scan_PrefersDirectPathOverEarlierLink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "z", "real.bin")
	writeFile(t, target, 100, time.Now())
	require.NoError(t, os.Symlink(target, filepath.Join(root, "a_link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "z"), filepath.Join(root, "b_dir")))

	index, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)
	require.Len(t, index.Entries, 1)
	assert.Equal(t, target, index.Entries[0].Path)
	assert.Equal(t, int64(100), index.TotalSize)
}

func TestIndexer_Scan_DoesNotModifyTree(t *testing.T) {
	root := t.TempDir()
	past := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(root, "x.bin")
	writeFile(t, path, 8, past)

	_, err := fs.NewIndexer(fs.NewWalker()).Scan(root)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size())
	assert.True(t, info.ModTime().Equal(past))
}
