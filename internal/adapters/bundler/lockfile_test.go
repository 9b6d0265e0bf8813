package bundler_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/adapters/bundler"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rails4Lock = `GEM
  remote: https://rubygems.org/
  specs:
    actionpack (4.0.2)
      activesupport (= 4.0.2)
      builder (~> 3.1.0)
    nokogiri (1.6.0-x86_64-linux)
      mini_portile (~> 0.5.0)
    railties (4.0.2)
      actionpack (= 4.0.2)
    rails_12factor (0.0.2)
      rails_serve_static_assets
      rails_stdout_logging

PLATFORMS
  ruby

DEPENDENCIES
  rails (= 4.0.2)
  rails_12factor
`

func TestParseSpecs(t *testing.T) {
	specs, err := bundler.ParseSpecs(strings.NewReader(rails4Lock))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"actionpack":     "4.0.2",
		"nokogiri":       "1.6.0",
		"railties":       "4.0.2",
		"rails_12factor": "0.0.2",
	}, specs)
}

func TestLockfile_GemVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, bundler.LockfileName), []byte(rails4Lock), 0o600))

	lock := bundler.NewLockfile()

	v, ok, err := lock.GemVersion(dir, "railties")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, v.Compare(domain.MustParseGemVersion("4.0.2")))

	_, ok, err = lock.GemVersion(dir, "sprockets")
	require.NoError(t, err)
	assert.False(t, ok)

	has, err := lock.HasGem(dir, "rails_12factor")
	require.NoError(t, err)
	assert.True(t, has)

	// Dependency lines of a spec are not specs themselves.
	has, err = lock.HasGem(dir, "rails_serve_static_assets")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLockfile_MissingLockfile(t *testing.T) {
	lock := bundler.NewLockfile()

	_, ok, err := lock.GemVersion(t.TempDir(), "railties")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLockfile_InvalidVersion(t *testing.T) {
	dir := t.TempDir()
	content := "GEM\n  specs:\n    railties (abc)\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, bundler.LockfileName), []byte(content), 0o600))

	_, _, err := bundler.NewLockfile().GemVersion(dir, "railties")
	require.ErrorIs(t, err, domain.ErrInvalidGemVersion)
}
