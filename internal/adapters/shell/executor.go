// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Execute waits for output pipes after the process exits or is cancelled.
const waitDelay = 5 * time.Second

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and returns its combined output.
// It merges environments with the following priority (low to high):
// 1. os.Environ() (System base)
// 2. cmd.Environment (Build overrides)
//
// Output lines are also forwarded to the logger at debug level and to the active vertex, if any.
// A cancelled or expired context is reported with the context error in the chain.
func (e *Executor) Execute(ctx context.Context, command domain.Command) (domain.CommandResult, error) {
	var result domain.CommandResult
	if command.Name == "" {
		return result, nil
	}

	name := command.Name

	cmdEnv := resolveEnvironment(os.Environ(), command.Environment)

	// Resolve the executable path using the new environment's PATH
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // configured command

	// Restore the original command name in Args[0]
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if command.Dir != "" {
		cmd.Dir = command.Dir
	}
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay

	output := &syncBuffer{}
	stdout := &logWriter{logger: e.logger, command: name}
	stderr := &logWriter{logger: e.logger, command: name}
	cmd.Stdout = &teeWriter{buf: output, log: stdout}
	cmd.Stderr = &teeWriter{buf: output, log: stderr}
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = &teeWriter{buf: output, log: stdout, vertex: vertex.Stdout()}
		cmd.Stderr = &teeWriter{buf: output, log: stderr, vertex: vertex.Stderr()}
	}

	runErr := cmd.Run()
	stdout.Flush()
	stderr.Flush()
	result.Output = output.String()

	if runErr == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", name)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1 // Unknown or signal
	}

	err := zerr.With(zerr.Wrap(runErr, "command failed"), "exit_code", result.ExitCode)
	return result, zerr.With(err, "command", name)
}

// syncBuffer collects output written concurrently from stdout and stderr.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type teeWriter struct {
	buf    *syncBuffer
	log    *logWriter
	vertex io.Writer
}

func (w *teeWriter) Write(p []byte) (int, error) {
	if _, err := w.buf.Write(p); err != nil {
		return 0, err
	}
	if w.vertex != nil {
		_, _ = w.vertex.Write(p)
	}
	return w.log.Write(p)
}

// logWriter forwards complete lines to the logger, buffering partial writes until a newline arrives.
type logWriter struct {
	logger  ports.Logger
	command string
	mu      sync.Mutex
	partial []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.partial = append(w.partial, p...)
	for {
		idx := bytes.IndexByte(w.partial, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimSuffix(string(w.partial[:idx]), "\r")
		w.partial = w.partial[idx+1:]
		w.logger.Debug(line, "command", w.command)
	}
	return len(p), nil
}

// Flush logs any trailing output that did not end with a newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.partial) > 0 {
		w.logger.Debug(string(w.partial), "command", w.command)
		w.partial = nil
	}
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
