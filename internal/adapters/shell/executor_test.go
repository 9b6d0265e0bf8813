package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/adapters/shell"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Debug("line1", "command", "sh").Times(1),
		mockLogger.EXPECT().Debug("line2", "command", "sh").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)

	result, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", result.Output)
	assert.Zero(t, result.ExitCode)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	// Partial writes are buffered until the newline arrives.
	mockLogger.EXPECT().Debug("part1part2", "command", "sh").Times(1)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_TrailingOutputIsFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("no newline", "command", "sh").Times(1)

	executor := shell.NewExecutor(mockLogger)

	result, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
	assert.Equal(t, "no newline", result.Output)
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("production", "command", "sh").Times(1)

	executor := shell.NewExecutor(mockLogger)

	result, err := executor.Execute(context.Background(), domain.Command{
		Name:        "sh",
		Args:        []string{"-c", "echo $RAILS_ENV"},
		Environment: map[string]string{"RAILS_ENV": "production"},
	})
	require.NoError(t, err)
	assert.Equal(t, "production\n", result.Output)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o600))

	executor := shell.NewExecutor(mockLogger)

	result, err := executor.Execute(context.Background(), domain.Command{
		Name: "cat",
		Args: []string{"marker.txt"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Equal(t, "here", result.Output)
}

func TestExecutor_Execute_CapturesStderrAndExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("SyntaxError: unexpected token", "command", "sh").Times(1)

	executor := shell.NewExecutor(mockLogger)

	result, err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'SyntaxError: unexpected token' >&2; exit 3"},
	})
	require.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Output, "SyntaxError")
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := executor.Execute(ctx, domain.Command{
		Name: "sleep",
		Args: []string{"10"},
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, result.ExitCode)
	assert.Less(t, time.Since(start), 8*time.Second)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	result, err := executor.Execute(context.Background(), domain.Command{})
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(result.Output))
}

func TestExecutor_Execute_ForwardsOutputToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	var stdout, stderr bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&stdout)
	vertex.EXPECT().Stderr().Return(&stderr)

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	result, err := shell.NewExecutor(mockLogger).Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
	assert.Contains(t, result.Output, "out")
	assert.Contains(t, result.Output, "err")
}
