// Package instrument wraps pipeline steps with tracing and timing.
package instrument

import (
	"context"
	"time"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

// StepFunc is one unit of work in the compile pipeline.
type StepFunc func(ctx context.Context) error

// Middleware decorates a named step.
type Middleware func(name string, next StepFunc) StepFunc

// Chain composes middlewares. The first middleware is the outermost.
func Chain(mws ...Middleware) Middleware {
	return func(name string, next StepFunc) StepFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				next = mws[i](name, next)
			}
		}
		return next
	}
}

// Run executes step wrapped by mw, or directly when mw is nil.
func Run(ctx context.Context, mw Middleware, name string, step StepFunc) error {
	if mw == nil {
		return step(ctx)
	}
	return mw(name, step)(ctx)
}

// Tracing records every step as a telemetry vertex. The vertex is attached to the
// step's context so commands run by the step can stream their output into it.
func Tracing(tel ports.Telemetry) Middleware {
	return func(name string, next StepFunc) StepFunc {
		return func(ctx context.Context) error {
			ctx, vertex := tel.Record(ctx, name)
			err := next(ctx)
			vertex.Complete(err)
			return err
		}
	}
}

// Timing logs how long each step took.
func Timing(logger ports.Logger) Middleware {
	return timing(logger, time.Now)
}

func timing(logger ports.Logger, now func() time.Time) Middleware {
	return func(name string, next StepFunc) StepFunc {
		return func(ctx context.Context) error {
			start := now()
			err := next(ctx)
			elapsed := now().Sub(start)
			if err != nil {
				logger.Warn("step failed", "step", name, "elapsed", elapsed)
				return err
			}
			logger.Debug("step finished", "step", name, "elapsed", elapsed)
			return nil
		}
	}
}

// MarkCached flags the step's vertex, if any, as satisfied without doing work.
func MarkCached(ctx context.Context) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Cached()
	}
}
