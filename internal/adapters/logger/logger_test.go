package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/adapters/logger"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("stored slot", "slot", "public/assets", "files", 3)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=\"stored slot\"")
	assert.Contains(t, out, "slot=public/assets")
	assert.Contains(t, out, "files=3")
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Debug("noisy")
	assert.Empty(t, buf.String())

	require.NoError(t, log.Configure("debug", ""))
	log.Debug("noisy")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(errors.New("disk full"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=\"disk full\"")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)
	require.NoError(t, log.Configure("warn", ""))

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_ConfigureFile(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	file := filepath.Join(t.TempDir(), "logs", "buildpack.log")
	require.NoError(t, log.Configure("info", file))

	log.Info("to both")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(file) //nolint:gosec // Test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"", "debug", "INFO", "warning", "error"} {
		_, err := logger.ParseLevel(name)
		assert.NoError(t, err, name)
	}

	_, err := logger.ParseLevel("verbose")
	require.ErrorIs(t, err, domain.ErrConfigLoadFailed)
}
