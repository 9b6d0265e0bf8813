// Package telemetry provides step recording sessions for the compile pipeline.
package telemetry

import (
	"context"
	"io"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

var (
	_ ports.Telemetry = Noop{}
	_ ports.Vertex    = noopVertex{}
)

// Noop is a ports.Telemetry that records nothing.
type Noop struct{}

// Record returns ctx unchanged and a vertex that discards everything.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Log(_ domain.LogLevel, _ string) {}
func (noopVertex) Complete(_ error) {}
func (noopVertex) Cached() {}
