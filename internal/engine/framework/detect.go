package framework

import (
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry holds the known strategies in priority order.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a Registry. Earlier strategies win when several match.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Detect returns the first strategy matching the application in buildDir.
func (r *Registry) Detect(buildDir string) (Strategy, error) {
	for _, s := range r.strategies {
		ok, err := s.Detect(buildDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "framework detection failed"), "framework", s.Version().String())
		}
		if ok {
			return s, nil
		}
	}
	return nil, domain.ErrNoFrameworkDetected
}

// Strategies returns the registered strategies.
func (r *Registry) Strategies() []Strategy {
	return r.strategies
}
