// Package hooks runs host-provided shell commands at fixed points of the build.
package hooks

import (
	"context"
	"errors"
	"strings"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HookRunner = (*Runner)(nil)

// Runner implements ports.HookRunner by passing each command to sh -c.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor, logger ports.Logger) *Runner {
	return &Runner{executor: executor, logger: logger}
}

// Run executes commands in order inside dir and stops at the first failure.
func (r *Runner) Run(ctx context.Context, dir string, commands []string, env map[string]string) error {
	for _, command := range commands {
		if strings.TrimSpace(command) == "" {
			continue
		}

		r.logger.Debug("running hook", "hook", command, "dir", dir)
		result, err := r.executor.Execute(ctx, domain.Command{
			Name:        "sh",
			Args:        []string{"-c", command},
			Dir:         dir,
			Environment: env,
		})
		if err != nil {
			err = zerr.With(zerr.With(err, "hook", command), "output", strings.TrimSpace(result.Output))
			return errors.Join(domain.ErrHookFailed, err)
		}
	}
	return nil
}
