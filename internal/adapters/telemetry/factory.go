package telemetry

import (
	"github.com/Prelang/prelang-buildpack/internal/adapters/telemetry/progrock"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

var _ ports.TelemetryFactory = (*Factory)(nil)

// Factory opens progrock sessions when telemetry is enabled and Noop otherwise.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a telemetry factory journaling to logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Open returns a fresh recording session.
func (f *Factory) Open(enabled bool) ports.Telemetry {
	if !enabled {
		return Noop{}
	}
	return progrock.New(f.logger)
}
