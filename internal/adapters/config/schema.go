package config

import "time"

// File is the decoded shape of .prelang.yml after defaults and environment overrides are applied.
type File struct {
	Log       LogSection       `mapstructure:"log"`
	Cache     CacheSection     `mapstructure:"cache"`
	Rake      RakeSection      `mapstructure:"rake"`
	Hooks     HooksSection     `mapstructure:"hooks"`
	Telemetry TelemetrySection `mapstructure:"telemetry"`
}

// LogSection configures the logger adapter.
type LogSection struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// CacheSection configures the asset cache.
// Budget accepts plain byte counts as well as human sizes such as "50MiB".
type CacheSection struct {
	Budget string `mapstructure:"budget"`
}

// RakeSection configures how rake tasks are invoked.
type RakeSection struct {
	Command     string        `mapstructure:"command"`
	CompileTask string        `mapstructure:"compile_task"`
	CleanTask   string        `mapstructure:"clean_task"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// HooksSection lists host commands run around the compile.
type HooksSection struct {
	Build       []string `mapstructure:"build"`
	PostCompile []string `mapstructure:"post_compile"`
}

// TelemetrySection toggles step tracing.
type TelemetrySection struct {
	Enabled bool `mapstructure:"enabled"`
}
