// Package framework selects the framework variant of an application and runs its build and compile hooks.
package framework

import (
	"context"
	"maps"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/engine/instrument"
	"github.com/Prelang/prelang-buildpack/internal/engine/precompile"
)

// Strategy is the fixed capability set of a framework variant.
type Strategy interface {
	// Version identifies the variant.
	Version() domain.FrameworkVersion
	// Name is the human readable application type.
	Name() string
	// Detect reports whether the application in buildDir belongs to this variant.
	Detect(buildDir string) (bool, error)
	// DefaultProcessTypes returns the process types offered when the application declares none.
	DefaultProcessTypes() map[string]string
	// Build runs the dependency build hook.
	Build(ctx context.Context, s *Session) error
	// Compile runs asset precompilation and any post-compile hooks.
	Compile(ctx context.Context, s *Session) (domain.CompileResult, error)
}

// Session carries everything one build needs. Paths are always explicit.
type Session struct {
	BuildDir   string
	Config     domain.Config
	Env        map[string]string
	Cache      ports.BuildCache
	Tasks      ports.TaskRunner
	Manifests  ports.ManifestLocator
	Evictor    precompile.Evictor
	Hooks      ports.HookRunner
	Console    ports.Console
	Logger     ports.Logger
	Middleware instrument.Middleware
}

// taskEnv layers the user environment over the variant defaults.
func (s *Session) taskEnv(defaults map[string]string) map[string]string {
	env := maps.Clone(defaults)
	if env == nil {
		env = make(map[string]string, len(s.Env))
	}
	maps.Copy(env, s.Env)
	return env
}

// precompile runs plan through a fresh orchestrator.
func (s *Session) precompile(ctx context.Context, plan domain.PrecompilePlan) (domain.CompileResult, error) {
	orch, err := precompile.NewOrchestrator(
		s.BuildDir,
		plan,
		s.Cache,
		s.Tasks,
		s.Manifests,
		s.Evictor,
		s.Console,
		s.Logger,
		precompile.WithMiddleware(s.Middleware),
	)
	if err != nil {
		return domain.CompileResult{}, err
	}
	return orch.Run(ctx)
}

// runBuildHooks runs the configured dependency installation commands.
func (s *Session) runBuildHooks(ctx context.Context) error {
	if len(s.Config.BuildHooks) == 0 {
		return nil
	}
	s.Console.Topic("Installing dependencies")
	return instrument.Run(ctx, s.Middleware, "hooks.build", func(ctx context.Context) error {
		return s.Hooks.Run(ctx, s.BuildDir, s.Config.BuildHooks, s.Env)
	})
}
