package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/adapters/config"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoader_Defaults(t *testing.T) {
	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, domain.DefaultAssetsCacheLimit, cfg.CacheBudget)
	assert.Equal(t, []string{"bundle", "exec", "rake"}, cfg.RakeCommand)
	assert.Equal(t, "assets:precompile", cfg.CompileTask)
	assert.Equal(t, "assets:clean", cfg.CleanTask)
	assert.Zero(t, cfg.RakeTimeout)
	assert.Empty(t, cfg.BuildHooks)
	assert.Empty(t, cfg.PostCompileHooks)
	assert.False(t, cfg.TelemetryEnabled)
}

func TestLoader_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  level: debug
cache:
  budget: 10MiB
rake:
  command: bin/rake
  timeout: 15m
hooks:
  build:
    - bundle install --deployment
  post_compile:
    - apt-get install -y sqlite3
telemetry:
  enabled: true
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.Budget(10*1024*1024), cfg.CacheBudget)
	assert.Equal(t, []string{"bin/rake"}, cfg.RakeCommand)
	assert.Equal(t, "assets:precompile", cfg.CompileTask)
	assert.Equal(t, 15*time.Minute, cfg.RakeTimeout)
	assert.Equal(t, []string{"bundle install --deployment"}, cfg.BuildHooks)
	assert.Equal(t, []string{"apt-get install -y sqlite3"}, cfg.PostCompileHooks)
	assert.True(t, cfg.TelemetryEnabled)
}

func TestLoader_PlainByteBudget(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cache:\n  budget: 1000\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Budget(1000), cfg.CacheBudget)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "cache:\n  budget: 10MiB\nrake:\n  compile_task: assets:precompile\n")
	t.Setenv("PRELANG_CACHE_BUDGET", "1KiB")
	t.Setenv("PRELANG_RAKE_COMPILE_TASK", "assets:precompile:all")
	t.Setenv("PRELANG_LOG_LEVEL", "warn")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.Budget(1024), cfg.CacheBudget)
	assert.Equal(t, "assets:precompile:all", cfg.CompileTask)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{name: "malformed yaml", content: "cache: [budget", is: domain.ErrConfigLoadFailed},
		{name: "negative budget", content: "cache:\n  budget: \"-5\"\n", is: domain.ErrInvalidBudget},
		{name: "unparsable budget", content: "cache:\n  budget: lots\n", is: domain.ErrConfigLoadFailed},
		{name: "empty rake command", content: "rake:\n  command: \"  \"\n", is: domain.ErrConfigLoadFailed},
		{name: "empty compile task", content: "rake:\n  compile_task: \"\"\n", is: domain.ErrConfigLoadFailed},
		{name: "bad timeout", content: "rake:\n  timeout: soon\n", is: domain.ErrConfigLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := newLoader(t).Load(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}
