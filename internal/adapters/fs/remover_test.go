package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemover_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.js")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	remover := fs.NewRemover()
	require.NoError(t, remover.Remove(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemover_Remove_AlreadyGone(t *testing.T) {
	remover := fs.NewRemover()
	assert.NoError(t, remover.Remove(filepath.Join(t.TempDir(), "never-existed")))
}

func TestRemover_Remove_NonEmptyDirectoryFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dir")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "child"), 0o750))

	err := fs.NewRemover().Remove(dir)
	assert.Error(t, err)
}
