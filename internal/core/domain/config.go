package domain

import "time"

// Config holds the resolved buildpack configuration for one build directory.
type Config struct {
	LogLevel         string
	LogFile          string
	CacheBudget      Budget
	RakeCommand      []string
	CompileTask      string
	CleanTask        string
	RakeTimeout      time.Duration
	BuildHooks       []string
	PostCompileHooks []string
	TelemetryEnabled bool
}
