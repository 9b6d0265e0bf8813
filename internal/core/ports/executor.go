package ports

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

// Executor defines the interface for running host commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and returns its combined output.
	// A non-zero exit is returned as an error alongside the captured result.
	Execute(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}

// HookRunner runs host-provided hook commands such as dependency installation.
type HookRunner interface {
	Run(ctx context.Context, dir string, commands []string, env map[string]string) error
}
