package framework

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
)

var (
	rails3Lower = domain.MustParseGemVersion("3.0.0")
	rails3Upper = domain.MustParseGemVersion("4.0.0.beta")
)

// baseProcessTypes are offered to every Ruby application.
func baseProcessTypes() map[string]string {
	return map[string]string{
		"rake":    "bundle exec rake",
		"console": "bundle exec irb",
	}
}

// productionEnv is the task environment shared by all Rails variants.
func productionEnv() map[string]string {
	return map[string]string{
		"RAILS_ENV": "production",
		"RACK_ENV":  "production",
	}
}

var _ Strategy = (*Rails3)(nil)

// Rails3 handles Rails 3.x applications. Compiled assets are not cached between builds.
type Rails3 struct {
	gems ports.GemInspector
}

// NewRails3 creates the Rails 3 strategy.
func NewRails3(gems ports.GemInspector) *Rails3 {
	return &Rails3{gems: gems}
}

// Version returns FrameworkRails3.
func (r *Rails3) Version() domain.FrameworkVersion {
	return domain.FrameworkRails3
}

// Name returns the application type.
func (r *Rails3) Name() string {
	return "Ruby/Rails"
}

// Detect matches railties 3.x.
func (r *Rails3) Detect(buildDir string) (bool, error) {
	return railtiesInRange(r.gems, buildDir, rails3Lower, rails3Upper)
}

// DefaultProcessTypes returns the Rails 3 process types.
func (r *Rails3) DefaultProcessTypes() map[string]string {
	types := baseProcessTypes()
	types["web"] = "bundle exec rails server -p $PORT"
	types["console"] = "bundle exec rails console"
	return types
}

// Build runs the configured dependency hooks.
func (r *Rails3) Build(ctx context.Context, s *Session) error {
	return s.runBuildHooks(ctx)
}

// Compile precompiles assets with the assets bundler group loaded.
func (r *Rails3) Compile(ctx context.Context, s *Session) (domain.CompileResult, error) {
	return s.precompile(ctx, r.plan(s))
}

func (r *Rails3) plan(s *Session) domain.PrecompilePlan {
	defaults := productionEnv()
	defaults["RAILS_GROUPS"] = "assets"
	return domain.PrecompilePlan{
		ManifestGlob: "public/assets/manifest.yml",
		CompileTask:  s.Config.CompileTask,
		Budget:       s.Config.CacheBudget,
		Env:          s.taskEnv(defaults),
	}
}

func railtiesInRange(gems ports.GemInspector, buildDir string, lower, upper domain.GemVersion) (bool, error) {
	version, ok, err := gems.GemVersion(buildDir, "railties")
	if err != nil || !ok {
		return false, err
	}
	return version.InRange(lower, upper), nil
}
