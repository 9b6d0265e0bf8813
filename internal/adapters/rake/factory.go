package rake

import (
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

var _ ports.TaskRunnerFactory = (*Factory)(nil)

// Factory creates Runners from the build configuration.
type Factory struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor, logger ports.Logger) *Factory {
	return &Factory{executor: executor, logger: logger}
}

// ForProject returns a Runner bound to dir using the configured rake command and timeout.
func (f *Factory) ForProject(dir string, cfg domain.Config) ports.TaskRunner {
	return NewRunner(f.executor, f.logger, dir, cfg.RakeCommand, cfg.RakeTimeout)
}
