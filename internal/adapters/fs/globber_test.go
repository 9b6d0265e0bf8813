package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobber_Find(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "public", "assets")
	require.NoError(t, os.MkdirAll(assets, 0o750))

	globber := fs.NewGlobber()

	match, err := globber.Find(root, "public/assets/manifest-*.json")
	require.NoError(t, err)
	assert.Empty(t, match)

	require.NoError(t, os.WriteFile(filepath.Join(assets, "manifest-bbb.json"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "manifest-aaa.json"), []byte("{}"), 0o600))

	match, err = globber.Find(root, "public/assets/manifest-*.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(assets, "manifest-aaa.json"), match)
}

func TestGlobber_Find_BadPattern(t *testing.T) {
	_, err := fs.NewGlobber().Find(t.TempDir(), "[")
	assert.Error(t, err)
}
