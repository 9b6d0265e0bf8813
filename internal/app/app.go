// Package app implements the application layer for the buildpack.
package app

import (
	"context"
	"fmt"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/engine/framework"
	"github.com/Prelang/prelang-buildpack/internal/engine/instrument"
	"github.com/Prelang/prelang-buildpack/internal/engine/precompile"
	"github.com/dustin/go-humanize"
	"go.trai.ch/zerr"
)

// Deps groups the collaborators of App.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	LogConfig    ports.LogConfigurer
	EnvReader    ports.EnvReader
	CacheOpener  ports.CacheOpener
	Tasks        ports.TaskRunnerFactory
	Manifests    ports.ManifestLocator
	Hooks        ports.HookRunner
	Console      ports.Console
	Logger       ports.Logger
	Telemetry    ports.TelemetryFactory
	Evictor      precompile.Evictor
	Frameworks   *framework.Registry
}

// App represents the main application logic.
type App struct {
	deps Deps
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps}
}

// Detection is the result of a successful Detect.
type Detection struct {
	Name      string
	Framework domain.FrameworkVersion
}

// Detect reports which framework variant handles the application in buildDir.
func (a *App) Detect(buildDir string) (Detection, error) {
	strategy, err := a.deps.Frameworks.Detect(buildDir)
	if err != nil {
		return Detection{}, err
	}
	return Detection{Name: strategy.Name(), Framework: strategy.Version()}, nil
}

// Compile builds the application in buildDir, keeping cached slots under cacheDir.
// envDir, if set, holds one file per user environment variable.
func (a *App) Compile(ctx context.Context, buildDir, cacheDir, envDir string) (domain.CompileResult, error) {
	cfg, err := a.loadConfig(buildDir)
	if err != nil {
		return domain.CompileResult{}, err
	}

	strategy, err := a.deps.Frameworks.Detect(buildDir)
	if err != nil {
		return domain.CompileResult{}, err
	}
	a.deps.Console.Topic(fmt.Sprintf("%s app detected", strategy.Name()))

	env := map[string]string{}
	if envDir != "" {
		if env, err = a.deps.EnvReader.Read(envDir); err != nil {
			return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to read environment directory"), "path", envDir)
		}
	}

	cache, err := a.deps.CacheOpener.Open(buildDir, cacheDir)
	if err != nil {
		return domain.CompileResult{}, err
	}

	tel := a.deps.Telemetry.Open(cfg.TelemetryEnabled)
	defer func() {
		if cerr := tel.Close(); cerr != nil {
			a.deps.Logger.Warn("failed to close telemetry", "error", cerr)
		}
	}()

	session := &framework.Session{
		BuildDir:   buildDir,
		Config:     cfg,
		Env:        env,
		Cache:      cache,
		Tasks:      a.deps.Tasks.ForProject(buildDir, cfg),
		Manifests:  a.deps.Manifests,
		Evictor:    a.deps.Evictor,
		Hooks:      a.deps.Hooks,
		Console:    a.deps.Console,
		Logger:     a.deps.Logger,
		Middleware: instrument.Chain(instrument.Tracing(tel), instrument.Timing(a.deps.Logger)),
	}

	if err := strategy.Build(ctx, session); err != nil {
		return domain.CompileResult{}, zerr.Wrap(err, "build hook failed")
	}

	res, err := strategy.Compile(ctx, session)
	if err != nil {
		return res, err
	}

	a.deps.Logger.Info("compile finished",
		"framework", strategy.Version().String(),
		"outcome", string(res.Outcome),
		"skip_reason", string(res.SkipReason),
		"duration", res.Duration,
	)
	return res, nil
}

// Info describes how the application in buildDir would be built.
type Info struct {
	Name         string            `yaml:"name"`
	Framework    string            `yaml:"framework"`
	ProcessTypes map[string]string `yaml:"default_process_types"`
	CacheBudget  string            `yaml:"cache_budget"`
	CompileTask  string            `yaml:"compile_task"`
	CleanTask    string            `yaml:"clean_task,omitempty"`
}

// Info returns the detected framework and the effective settings for buildDir.
func (a *App) Info(buildDir string) (Info, error) {
	cfg, err := a.loadConfig(buildDir)
	if err != nil {
		return Info{}, err
	}
	strategy, err := a.deps.Frameworks.Detect(buildDir)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Name:         strategy.Name(),
		Framework:    strategy.Version().String(),
		ProcessTypes: strategy.DefaultProcessTypes(),
		CacheBudget:  humanize.IBytes(uint64(cfg.CacheBudget)), //nolint:gosec // Budget is validated
		CompileTask:  cfg.CompileTask,
		CleanTask:    cfg.CleanTask,
	}, nil
}

// CacheStatus lists the slots stored under cacheDir.
func (a *App) CacheStatus(ctx context.Context, cacheDir string) ([]domain.SlotRecord, error) {
	cache, err := a.deps.CacheOpener.Open("", cacheDir)
	if err != nil {
		return nil, err
	}
	return cache.Status(ctx)
}

// CacheClear removes one slot, or everything the cache holds when slot is empty.
// It returns the names of what was cleared.
func (a *App) CacheClear(ctx context.Context, cacheDir, slot string) ([]string, error) {
	cache, err := a.deps.CacheOpener.Open("", cacheDir)
	if err != nil {
		return nil, err
	}
	if slot == "" {
		return cache.Purge(ctx)
	}

	records, err := cache.Status(ctx)
	if err != nil {
		return nil, err
	}
	target := domain.NewSlot(slot)
	for _, r := range records {
		if r.Slot == slot {
			target = domain.Slot{Name: r.Slot, Path: r.Path}
			break
		}
	}
	if err := cache.Clear(ctx, target); err != nil {
		return nil, err
	}
	return []string{target.Name}, nil
}

func (a *App) loadConfig(buildDir string) (domain.Config, error) {
	cfg, err := a.deps.ConfigLoader.Load(buildDir)
	if err != nil {
		return domain.Config{}, err
	}
	if err := a.deps.LogConfig.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
