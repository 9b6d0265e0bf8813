// Package config loads buildpack settings from defaults, .prelang.yml and PRELANG_ environment variables.
package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	// FileName is the optional per-application config file looked up in the build directory.
	FileName = ".prelang.yml"

	// EnvPrefix is prepended to every environment override, e.g. PRELANG_CACHE_BUDGET.
	EnvPrefix = "PRELANG"
)

// Loader implements ports.ConfigLoader with viper.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a config loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load resolves the configuration for buildDir.
// A missing config file is not an error; defaults and environment overrides still apply.
func (l *Loader) Load(buildDir string) (domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(buildDir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, loadError(zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
		}
		l.logger.Debug("config file loaded", "path", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, loadError(zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", path))
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return domain.Config{}, loadError(zerr.Wrap(err, "failed to decode config"))
	}

	return toDomain(file)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("cache.budget", strconv.FormatInt(int64(domain.DefaultAssetsCacheLimit), 10))
	v.SetDefault("rake.command", "bundle exec rake")
	v.SetDefault("rake.compile_task", "assets:precompile")
	v.SetDefault("rake.clean_task", "assets:clean")
	v.SetDefault("rake.timeout", "0s")
	v.SetDefault("hooks.build", []string{})
	v.SetDefault("hooks.post_compile", []string{})
	v.SetDefault("telemetry.enabled", false)
}

func toDomain(file File) (domain.Config, error) {
	budget, err := parseBudget(file.Cache.Budget)
	if err != nil {
		return domain.Config{}, err
	}

	command := strings.Fields(file.Rake.Command)
	if len(command) == 0 {
		return domain.Config{}, loadError(zerr.New("rake.command must not be empty"))
	}
	if file.Rake.CompileTask == "" {
		return domain.Config{}, loadError(zerr.New("rake.compile_task must not be empty"))
	}
	if file.Rake.Timeout < 0 {
		return domain.Config{}, loadError(zerr.With(zerr.New("rake.timeout must not be negative"), "timeout", file.Rake.Timeout))
	}

	return domain.Config{
		LogLevel:         file.Log.Level,
		LogFile:          file.Log.File,
		CacheBudget:      budget,
		RakeCommand:      command,
		CompileTask:      file.Rake.CompileTask,
		CleanTask:        file.Rake.CleanTask,
		RakeTimeout:      file.Rake.Timeout,
		BuildHooks:       file.Hooks.Build,
		PostCompileHooks: file.Hooks.PostCompile,
		TelemetryEnabled: file.Telemetry.Enabled,
	}, nil
}

func parseBudget(raw string) (domain.Budget, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		return 0, errors.Join(domain.ErrInvalidBudget, loadError(zerr.With(zerr.New("cache.budget must not be negative"), "budget", raw)))
	}
	n, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, loadError(zerr.With(zerr.Wrap(err, "invalid cache.budget"), "budget", raw))
	}
	if n > math.MaxInt64 {
		return 0, loadError(zerr.With(zerr.New("cache.budget is too large"), "budget", raw))
	}
	return domain.Budget(n), nil
}

func loadError(err error) error {
	return errors.Join(domain.ErrConfigLoadFailed, err)
}
