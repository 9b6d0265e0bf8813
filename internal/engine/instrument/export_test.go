package instrument

import (
	"time"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

// TimingWithClock exposes timing with an injected clock for tests.
func TimingWithClock(logger ports.Logger, now func() time.Time) Middleware {
	return timing(logger, now)
}
