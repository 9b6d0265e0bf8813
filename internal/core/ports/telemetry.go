package ports

import (
	"context"
	"io"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work.
type Telemetry interface {
	// Record starts a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer for the vertex's error stream.
	Stderr() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed if err is non-nil.
	Complete(err error)
	// Cached marks the vertex as satisfied without doing work.
	Cached()
}

// TelemetryFactory opens a recording session for one build.
type TelemetryFactory interface {
	// Open returns a recording session, or a no-op session when enabled is false.
	Open(enabled bool) Telemetry
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying the active vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the active vertex, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
