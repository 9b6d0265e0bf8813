package framework

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/engine/instrument"
	"go.trai.ch/zerr"
)

const (
	// PublicAssetsPath holds the compiled asset output.
	PublicAssetsPath = "public/assets"
	// AssetsCachePath holds the asset pipeline's working cache.
	AssetsCachePath = "tmp/cache/assets"
)

var (
	rails4Lower = domain.MustParseGemVersion("4.0.0.beta")
	rails4Upper = domain.MustParseGemVersion("4.1.0.beta1")
)

const twelveFactorWarning = `Include 'rails_12factor' gem to enable all platform features
See https://devcenter.heroku.com/articles/rails-integration-gems for more information.`

var _ Strategy = (*Rails4)(nil)

// Rails4 handles Rails 4.0.x applications. The compiled assets and the asset
// pipeline cache are kept between builds and the cache is trimmed to the budget.
type Rails4 struct {
	gems ports.GemInspector
}

// NewRails4 creates the Rails 4 strategy.
func NewRails4(gems ports.GemInspector) *Rails4 {
	return &Rails4{gems: gems}
}

// Version returns FrameworkRails4.
func (r *Rails4) Version() domain.FrameworkVersion {
	return domain.FrameworkRails4
}

// Name returns the application type.
func (r *Rails4) Name() string {
	return "Ruby/Rails"
}

// Detect matches railties 4.0.0.beta up to, but excluding, 4.1.0.beta1.
func (r *Rails4) Detect(buildDir string) (bool, error) {
	return railtiesInRange(r.gems, buildDir, rails4Lower, rails4Upper)
}

// DefaultProcessTypes returns the Rails 4 process types, which use the bin/rails binstub.
func (r *Rails4) DefaultProcessTypes() map[string]string {
	types := baseProcessTypes()
	types["web"] = "bin/rails server -p $PORT -e $RAILS_ENV"
	types["console"] = "bin/rails console"
	return types
}

// Build warns about missing platform gems and runs the configured dependency hooks.
func (r *Rails4) Build(ctx context.Context, s *Session) error {
	missing, err := r.missingPlugins(s.BuildDir)
	if err != nil {
		return err
	}
	if missing {
		s.Console.Warn(twelveFactorWarning)
	}
	return s.runBuildHooks(ctx)
}

// missingPlugins reports whether the app lacks rails_12factor and one of the gems it bundles.
func (r *Rails4) missingPlugins(buildDir string) (bool, error) {
	has, err := r.gems.HasGem(buildDir, "rails_12factor")
	if err != nil || has {
		return false, err
	}
	for _, plugin := range []string{"rails_serve_static_assets", "rails_stdout_logging"} {
		has, err := r.gems.HasGem(buildDir, plugin)
		if err != nil {
			return false, err
		}
		if !has {
			return true, nil
		}
	}
	return false, nil
}

// Compile precompiles assets with caching and then runs the post-compile hooks.
func (r *Rails4) Compile(ctx context.Context, s *Session) (domain.CompileResult, error) {
	res, err := s.precompile(ctx, r.plan(s))
	if err != nil {
		return res, err
	}
	if err := r.postCompile(ctx, s); err != nil {
		return res, err
	}
	return res, nil
}

func (r *Rails4) plan(s *Session) domain.PrecompilePlan {
	return domain.PrecompilePlan{
		ManifestGlob: PublicAssetsPath + "/manifest-*.json",
		CompileTask:  s.Config.CompileTask,
		CleanTask:    s.Config.CleanTask,
		Slots: []domain.Slot{
			domain.NewSlot(PublicAssetsPath),
			domain.NewSlot(AssetsCachePath),
		},
		EvictSlot: AssetsCachePath,
		Budget:    s.Config.CacheBudget,
		Env:       s.taskEnv(productionEnv()),
	}
}

func (r *Rails4) postCompile(ctx context.Context, s *Session) error {
	if len(s.Config.PostCompileHooks) == 0 {
		return nil
	}
	s.Console.Topic("Installing Prelang dependencies")
	err := instrument.Run(ctx, s.Middleware, "hooks.post_compile", func(ctx context.Context) error {
		return s.Hooks.Run(ctx, s.BuildDir, s.Config.PostCompileHooks, s.Env)
	})
	return zerr.Wrap(err, "post-compile hook failed")
}
