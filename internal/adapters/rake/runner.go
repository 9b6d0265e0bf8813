// Package rake runs application tasks through the rake command line.
package rake

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCommand is used when no rake command is configured.
var DefaultCommand = []string{"bundle", "exec", "rake"}

var _ ports.TaskRunner = (*Runner)(nil)

// Runner implements ports.TaskRunner for one project directory.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
	dir      string
	command  []string
	timeout  time.Duration
	now      func() time.Time

	mu     sync.Mutex
	tasks  map[string]struct{}
	loaded bool
}

// NewRunner creates a Runner that invokes command inside dir.
// A non-positive timeout leaves task duration unbounded.
func NewRunner(executor ports.Executor, logger ports.Logger, dir string, command []string, timeout time.Duration) *Runner {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &Runner{
		executor: executor,
		logger:   logger,
		dir:      dir,
		command:  command,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Defined reports whether the project defines task. The task list is read once per Runner.
func (r *Runner) Defined(ctx context.Context, task string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		tasks, err := r.listTasks(ctx)
		if err != nil {
			return false, err
		}
		r.tasks = tasks
		r.loaded = true
	}

	_, ok := r.tasks[task]
	return ok, nil
}

func (r *Runner) listTasks(ctx context.Context) (map[string]struct{}, error) {
	result, err := r.executor.Execute(ctx, r.commandFor(nil, "-P"))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(ctxErr, "task lookup interrupted")
		}
		err = zerr.With(err, "dir", r.dir)
		return nil, errors.Join(domain.ErrTaskLookupFailed, zerr.With(err, "output", strings.TrimSpace(result.Output)))
	}

	tasks := ParseTaskList(result.Output)
	r.logger.Debug("loaded rake tasks", "count", len(tasks), "dir", r.dir)
	return tasks, nil
}

// Invoke runs task with env added to the process environment.
// A task that exits unsuccessfully yields Succeeded=false and a nil error;
// cancellation and timeouts are returned as errors.
func (r *Runner) Invoke(ctx context.Context, task string, env map[string]string) (domain.TaskResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := r.now()
	output, err := r.executor.Execute(ctx, r.commandFor(env, task))
	res := domain.TaskResult{
		Defined:  true,
		Duration: r.now().Sub(start),
		Output:   output.Output,
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, zerr.With(zerr.Wrap(ctxErr, "task interrupted"), "task", task)
		}
		if output.ExitCode < 0 && res.Output == "" {
			res.Output = err.Error()
		}
		r.logger.Debug("rake task failed", "task", task, "exit_code", output.ExitCode)
		return res, nil
	}

	res.Succeeded = true
	return res, nil
}

func (r *Runner) commandFor(env map[string]string, args ...string) domain.Command {
	full := make([]string, 0, len(r.command)-1+len(args))
	full = append(full, r.command[1:]...)
	full = append(full, args...)
	return domain.Command{
		Name:        r.command[0],
		Args:        full,
		Dir:         r.dir,
		Environment: env,
	}
}

// ParseTaskList extracts task names from `rake -P` output.
// Task lines start with "rake "; indented lines list prerequisites and are ignored.
func ParseTaskList(output string) map[string]struct{} {
	tasks := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		name, ok := strings.CutPrefix(line, "rake ")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name != "" {
			tasks[name] = struct{}{}
		}
	}
	return tasks
}
