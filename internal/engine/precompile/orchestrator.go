// Package precompile runs the asset compile task and keeps its output cached between builds.
package precompile

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/engine/eviction"
	"github.com/Prelang/prelang-buildpack/internal/engine/instrument"
	"github.com/dustin/go-humanize"
	"go.trai.ch/zerr"
)

// Step names reported to the instrument middleware.
const (
	StepCheck   = "assets.check"
	StepLoad    = "cache.load"
	StepCompile = "assets.compile"
	StepClean   = "assets.clean"
	StepEvict   = "cache.evict"
	StepStore   = "cache.store"
)

// Evictor keeps a directory within a byte budget.
type Evictor interface {
	Enforce(ctx context.Context, root string, budget domain.Budget) (eviction.Report, error)
}

// Orchestrator drives one precompile run through its state machine:
// NotStarted, Checking, then Skipped or Compiling, then Caching or Aborted, then Done.
// An Orchestrator is not safe for concurrent use.
type Orchestrator struct {
	buildDir  string
	plan      domain.PrecompilePlan
	cache     ports.BuildCache
	tasks     ports.TaskRunner
	manifests ports.ManifestLocator
	evictor   Evictor
	console   ports.Console
	logger    ports.Logger
	mw        instrument.Middleware

	state       domain.PrecompileState
	transitions []domain.PrecompileState
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMiddleware wraps every step with mw.
func WithMiddleware(mw instrument.Middleware) Option {
	return func(o *Orchestrator) {
		o.mw = mw
	}
}

// NewOrchestrator creates an Orchestrator for buildDir. The plan is validated up front.
func NewOrchestrator(
	buildDir string,
	plan domain.PrecompilePlan,
	cache ports.BuildCache,
	tasks ports.TaskRunner,
	manifests ports.ManifestLocator,
	evictor Evictor,
	console ports.Console,
	logger ports.Logger,
	opts ...Option,
) (*Orchestrator, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	o := &Orchestrator{
		buildDir:  buildDir,
		plan:      plan,
		cache:     cache,
		tasks:     tasks,
		manifests: manifests,
		evictor:   evictor,
		console:   console,
		logger:    logger,
		state:     domain.StateNotStarted,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// State returns the current state.
func (o *Orchestrator) State() domain.PrecompileState {
	return o.state
}

func (o *Orchestrator) to(state domain.PrecompileState) {
	o.logger.Debug("precompile state", "from", o.state, "to", state)
	o.state = state
	o.transitions = append(o.transitions, state)
}

func (o *Orchestrator) step(ctx context.Context, name string, fn instrument.StepFunc) error {
	return instrument.Run(ctx, o.mw, name, fn)
}

func (o *Orchestrator) result(outcome domain.Outcome) domain.CompileResult {
	return domain.CompileResult{
		Outcome:     outcome,
		Transitions: append([]domain.PrecompileState{domain.StateNotStarted}, o.transitions...),
	}
}

// Run executes the precompile. Compile task failures and cancellation end in Aborted and
// return ErrCompileFailed or ErrCompileCancelled; nothing is stored or evicted in that case.
func (o *Orchestrator) Run(ctx context.Context) (domain.CompileResult, error) {
	if o.state != domain.StateNotStarted {
		return domain.CompileResult{}, zerr.With(zerr.New("orchestrator already ran"), "state", string(o.state))
	}

	o.to(domain.StateChecking)
	skip, manifest, err := o.check(ctx)
	if err != nil {
		return o.abort(domain.OutcomeFailed, err)
	}
	if skip != domain.SkipNone {
		o.to(domain.StateSkipped)
		o.to(domain.StateDone)
		res := o.result(domain.OutcomeSkipped)
		res.SkipReason = skip
		res.Manifest = manifest
		return res, nil
	}

	o.to(domain.StateCompiling)
	o.console.Topic("Preparing app for Rails asset pipeline")

	if err := o.step(ctx, StepLoad, o.load); err != nil {
		return o.abort(domain.OutcomeFailed, err)
	}

	var task domain.TaskResult
	err = o.step(ctx, StepCompile, func(ctx context.Context) error {
		var err error
		task, err = o.compile(ctx)
		return err
	})
	if err != nil {
		res, err := o.abort(domain.OutcomeFailed, err)
		res.Duration = task.Duration
		res.Output = task.Output
		return res, err
	}

	o.to(domain.StateCaching)
	o.console.Puts(fmt.Sprintf("Asset precompilation completed (%.2fs)", task.Duration.Seconds()))

	_ = o.step(ctx, StepClean, o.clean)

	if err := o.step(ctx, StepEvict, o.evict); err != nil {
		return o.abort(domain.OutcomeFailed, err)
	}
	if err := o.step(ctx, StepStore, o.store); err != nil {
		return o.abort(domain.OutcomeFailed, err)
	}

	o.to(domain.StateDone)
	res := o.result(domain.OutcomeSucceeded)
	res.Duration = task.Duration
	res.Output = task.Output
	return res, nil
}

func (o *Orchestrator) abort(outcome domain.Outcome, err error) (domain.CompileResult, error) {
	o.to(domain.StateAborted)
	o.to(domain.StateDone)
	return o.result(outcome), err
}

// check decides whether the compile can be skipped.
func (o *Orchestrator) check(ctx context.Context) (domain.SkipReason, string, error) {
	reason := domain.SkipNone
	var manifest string

	err := o.step(ctx, StepCheck, func(ctx context.Context) error {
		if o.plan.ManifestGlob != "" {
			found, err := o.manifests.Find(o.buildDir, o.plan.ManifestGlob)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to look for asset manifest"), "pattern", o.plan.ManifestGlob)
			}
			if found != "" {
				o.console.Puts("Detected manifest file, assuming assets were compiled locally")
				reason, manifest = domain.SkipManifestPresent, found
				instrument.MarkCached(ctx)
				return nil
			}
		}

		defined, err := o.tasks.Defined(ctx, o.plan.CompileTask)
		if err != nil {
			return err
		}
		if !defined {
			o.logger.Info("compile task not defined, skipping", "task", o.plan.CompileTask)
			reason = domain.SkipTaskUndefined
			instrument.MarkCached(ctx)
		}
		return nil
	})
	return reason, manifest, err
}

func (o *Orchestrator) load(ctx context.Context) error {
	for _, slot := range o.plan.Slots {
		if err := o.cache.Load(ctx, slot); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) compile(ctx context.Context) (domain.TaskResult, error) {
	task, err := o.tasks.Invoke(ctx, o.plan.CompileTask, maps.Clone(o.plan.Env))
	if err != nil {
		if isCancellation(ctx, err) {
			return task, errors.Join(domain.ErrCompileCancelled, zerr.With(err, "task", o.plan.CompileTask))
		}
		return task, errors.Join(domain.ErrCompileFailed, zerr.With(err, "task", o.plan.CompileTask))
	}
	if !task.Succeeded {
		o.console.Error("Precompiling assets failed.", task.Output)
		err := zerr.With(zerr.New("compile task reported failure"), "task", o.plan.CompileTask)
		return task, errors.Join(domain.ErrCompileFailed, err)
	}
	return task, nil
}

// clean runs the clean task. Its failures are reported but never fail the build.
func (o *Orchestrator) clean(ctx context.Context) error {
	if o.plan.CleanTask == "" {
		return nil
	}
	o.console.Puts("Cleaning assets")

	task, err := o.tasks.Invoke(ctx, o.plan.CleanTask, maps.Clone(o.plan.Env))
	switch {
	case err != nil:
		o.logger.Warn("clean task errored", "task", o.plan.CleanTask, "error", err)
		return err
	case !task.Succeeded:
		o.logger.Warn("clean task failed", "task", o.plan.CleanTask, "output", task.Output)
		return zerr.With(zerr.New("clean task reported failure"), "task", o.plan.CleanTask)
	}
	return nil
}

func (o *Orchestrator) evict(ctx context.Context) error {
	if o.plan.EvictSlot == "" {
		return nil
	}
	slot, _ := o.plan.Slot(o.plan.EvictSlot)

	report, err := o.evictor.Enforce(ctx, slot.WorkingPath(o.buildDir), o.plan.Budget)
	if err != nil {
		return err
	}
	if report.Removed > 0 {
		o.console.Puts(fmt.Sprintf("Removed %d stale files from %s (%s freed)",
			report.Removed, slot.Path,
			humanize.IBytes(uint64(report.BytesFreed)), //nolint:gosec // Sizes are non-negative
		))
	}
	return nil
}

func (o *Orchestrator) store(ctx context.Context) error {
	for _, slot := range o.plan.Slots {
		if err := o.cache.Store(ctx, slot); err != nil {
			return err
		}
	}
	return nil
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
