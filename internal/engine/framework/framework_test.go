package framework_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports/mocks"
	"github.com/Prelang/prelang-buildpack/internal/engine/eviction"
	"github.com/Prelang/prelang-buildpack/internal/engine/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const buildDir = "/build"

func gemsWithRailties(t *testing.T, version string) *mocks.MockGemInspector {
	t.Helper()
	gems := mocks.NewMockGemInspector(gomock.NewController(t))
	if version == "" {
		gems.EXPECT().GemVersion(buildDir, "railties").Return(domain.GemVersion{}, false, nil).AnyTimes()
		return gems
	}
	gems.EXPECT().GemVersion(buildDir, "railties").Return(domain.MustParseGemVersion(version), true, nil).AnyTimes()
	return gems
}

func TestRegistry_DetectSelectsVariant(t *testing.T) {
	tests := []struct {
		railties string
		want     domain.FrameworkVersion
	}{
		{railties: "4.0.0", want: domain.FrameworkRails4},
		{railties: "4.0.0.beta", want: domain.FrameworkRails4},
		{railties: "4.0.13", want: domain.FrameworkRails4},
		{railties: "4.1.0.beta", want: domain.FrameworkRails4},
		{railties: "4.1.0.beta1", want: domain.FrameworkUnknown},
		{railties: "4.1.0", want: domain.FrameworkUnknown},
		{railties: "3.2.22", want: domain.FrameworkRails3},
		{railties: "4.0.0.alpha", want: domain.FrameworkRails3},
		{railties: "2.3.18", want: domain.FrameworkUnknown},
		{railties: "", want: domain.FrameworkUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.railties, func(t *testing.T) {
			gems := gemsWithRailties(t, tt.railties)
			registry := framework.NewRegistry(framework.NewRails4(gems), framework.NewRails3(gems))

			strategy, err := registry.Detect(buildDir)
			if tt.want == domain.FrameworkUnknown {
				require.ErrorIs(t, err, domain.ErrNoFrameworkDetected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strategy.Version())
		})
	}
}

func TestRegistry_DetectPropagatesInspectorErrors(t *testing.T) {
	gems := mocks.NewMockGemInspector(gomock.NewController(t))
	boom := errors.New("unreadable Gemfile.lock")
	gems.EXPECT().GemVersion(buildDir, "railties").Return(domain.GemVersion{}, false, boom)

	_, err := framework.NewRegistry(framework.NewRails4(gems)).Detect(buildDir)
	require.ErrorIs(t, err, boom)
}

func TestDefaultProcessTypes(t *testing.T) {
	rails4 := framework.NewRails4(nil).DefaultProcessTypes()
	assert.Equal(t, "bin/rails server -p $PORT -e $RAILS_ENV", rails4["web"])
	assert.Equal(t, "bin/rails console", rails4["console"])
	assert.Equal(t, "bundle exec rake", rails4["rake"])

	rails3 := framework.NewRails3(nil).DefaultProcessTypes()
	assert.Equal(t, "bundle exec rails server -p $PORT", rails3["web"])
	assert.Equal(t, "bundle exec rails console", rails3["console"])
}

type sessionMocks struct {
	gems      *mocks.MockGemInspector
	cache     *mocks.MockBuildCache
	tasks     *mocks.MockTaskRunner
	manifests *mocks.MockManifestLocator
	hooks     *mocks.MockHookRunner
	console   *mocks.MockConsole
}

func newSession(t *testing.T, cfg domain.Config) (*framework.Session, *sessionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &sessionMocks{
		gems:      mocks.NewMockGemInspector(ctrl),
		cache:     mocks.NewMockBuildCache(ctrl),
		tasks:     mocks.NewMockTaskRunner(ctrl),
		manifests: mocks.NewMockManifestLocator(ctrl),
		hooks:     mocks.NewMockHookRunner(ctrl),
		console:   mocks.NewMockConsole(ctrl),
	}
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	return &framework.Session{
		BuildDir:  buildDir,
		Config:    cfg,
		Env:       map[string]string{"SECRET_KEY_BASE": "abc", "RAILS_ENV": "staging"},
		Cache:     m.cache,
		Tasks:     m.tasks,
		Manifests: m.manifests,
		Hooks:     m.hooks,
		Console:   m.console,
		Logger:    log,
	}, m
}

func defaultConfig() domain.Config {
	return domain.Config{
		CacheBudget:      domain.DefaultAssetsCacheLimit,
		CompileTask:      "assets:precompile",
		CleanTask:        "assets:clean",
		BuildHooks:       []string{"bundle install"},
		PostCompileHooks: []string{"gem install sqlite3"},
	}
}

func TestRails4_BuildWarnsWithout12Factor(t *testing.T) {
	session, m := newSession(t, defaultConfig())
	m.gems.EXPECT().HasGem(buildDir, "rails_12factor").Return(false, nil)
	m.gems.EXPECT().HasGem(buildDir, "rails_serve_static_assets").Return(true, nil)
	m.gems.EXPECT().HasGem(buildDir, "rails_stdout_logging").Return(false, nil)
	m.console.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "rails_12factor")
	})
	m.console.EXPECT().Topic("Installing dependencies")
	m.hooks.EXPECT().Run(gomock.Any(), buildDir, []string{"bundle install"}, session.Env).Return(nil)

	require.NoError(t, framework.NewRails4(m.gems).Build(context.Background(), session))
}

func TestRails4_BuildQuietWith12Factor(t *testing.T) {
	cfg := defaultConfig()
	cfg.BuildHooks = nil
	session, m := newSession(t, cfg)
	m.gems.EXPECT().HasGem(buildDir, "rails_12factor").Return(true, nil)

	require.NoError(t, framework.NewRails4(m.gems).Build(context.Background(), session))
}

func TestRails4_CompileCachesAndRunsPostCompileHooks(t *testing.T) {
	session, m := newSession(t, defaultConfig())
	m.console.EXPECT().Topic(gomock.Any()).AnyTimes()
	m.console.EXPECT().Puts(gomock.Any()).AnyTimes()

	wantEnv := map[string]string{"RAILS_ENV": "staging", "RACK_ENV": "production", "SECRET_KEY_BASE": "abc"}
	m.manifests.EXPECT().Find(buildDir, "public/assets/manifest-*.json").Return("", nil)
	m.tasks.EXPECT().Defined(gomock.Any(), "assets:precompile").Return(true, nil)
	m.cache.EXPECT().Load(gomock.Any(), domain.NewSlot("public/assets")).Return(nil)
	m.cache.EXPECT().Load(gomock.Any(), domain.NewSlot("tmp/cache/assets")).Return(nil)
	m.tasks.EXPECT().Invoke(gomock.Any(), "assets:precompile", wantEnv).
		Return(domain.TaskResult{Defined: true, Succeeded: true}, nil)
	m.tasks.EXPECT().Invoke(gomock.Any(), "assets:clean", wantEnv).
		Return(domain.TaskResult{Defined: true, Succeeded: true}, nil)
	m.cache.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.hooks.EXPECT().Run(gomock.Any(), buildDir, []string{"gem install sqlite3"}, session.Env).Return(nil)

	session.Evictor = noEviction{}
	res, err := framework.NewRails4(m.gems).Compile(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
}

func TestRails4_CompileFailureSkipsPostCompileHooks(t *testing.T) {
	session, m := newSession(t, defaultConfig())
	m.console.EXPECT().Topic(gomock.Any()).AnyTimes()
	m.console.EXPECT().Error(gomock.Any(), "boom")

	m.manifests.EXPECT().Find(gomock.Any(), gomock.Any()).Return("", nil)
	m.tasks.EXPECT().Defined(gomock.Any(), gomock.Any()).Return(true, nil)
	m.cache.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.tasks.EXPECT().Invoke(gomock.Any(), "assets:precompile", gomock.Any()).
		Return(domain.TaskResult{Defined: true, Output: "boom"}, nil)
	m.hooks.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := framework.NewRails4(m.gems).Compile(context.Background(), session)
	require.ErrorIs(t, err, domain.ErrCompileFailed)
}

func TestRails4_PostCompileHookFailure(t *testing.T) {
	session, m := newSession(t, defaultConfig())
	m.console.EXPECT().Topic(gomock.Any()).AnyTimes()
	m.console.EXPECT().Puts(gomock.Any()).AnyTimes()
	m.manifests.EXPECT().Find(gomock.Any(), gomock.Any()).Return("public/assets/manifest-1.json", nil)
	m.hooks.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrHookFailed)

	res, err := framework.NewRails4(m.gems).Compile(context.Background(), session)
	require.ErrorIs(t, err, domain.ErrHookFailed)
	assert.Equal(t, domain.OutcomeSkipped, res.Outcome)
}

func TestRails3_CompileLoadsAssetsGroupWithoutCaching(t *testing.T) {
	session, m := newSession(t, defaultConfig())
	m.console.EXPECT().Topic(gomock.Any()).AnyTimes()
	m.console.EXPECT().Puts(gomock.Any()).AnyTimes()

	m.manifests.EXPECT().Find(buildDir, "public/assets/manifest.yml").Return("", nil)
	m.tasks.EXPECT().Defined(gomock.Any(), "assets:precompile").Return(true, nil)
	m.tasks.EXPECT().Invoke(gomock.Any(), "assets:precompile", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, env map[string]string) (domain.TaskResult, error) {
			assert.Equal(t, "assets", env["RAILS_GROUPS"])
			assert.Equal(t, "abc", env["SECRET_KEY_BASE"])
			return domain.TaskResult{Defined: true, Succeeded: true}, nil
		})

	res, err := framework.NewRails3(m.gems).Compile(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSucceeded, res.Outcome)
}

type noEviction struct{}

func (noEviction) Enforce(_ context.Context, root string, budget domain.Budget) (eviction.Report, error) {
	return eviction.Report{Root: root, Budget: budget}, nil
}
