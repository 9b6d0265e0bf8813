package ports

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

// TaskRunner invokes named build tasks provided by the application (for example rake tasks).
//
//go:generate go run go.uber.org/mock/mockgen -source=tasks.go -destination=mocks/mock_tasks.go -package=mocks
type TaskRunner interface {
	// Defined reports whether the application defines the named task.
	Defined(ctx context.Context, task string) (bool, error)

	// Invoke runs the named task with the given environment.
	// A task that runs and fails is reported through TaskResult.Succeeded, not through the error.
	Invoke(ctx context.Context, task string, env map[string]string) (domain.TaskResult, error)
}

// ManifestLocator finds marker files left behind by out-of-band compilation.
type ManifestLocator interface {
	// Find returns the first path under root matching pattern, or "" if nothing matches.
	Find(root, pattern string) (string, error)
}

// TaskRunnerFactory creates TaskRunners bound to a project directory.
type TaskRunnerFactory interface {
	ForProject(dir string, cfg domain.Config) TaskRunner
}
