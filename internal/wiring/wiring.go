// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/bundler"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/cache"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/config"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/console"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/envdir"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/fs"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/hooks"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/logger"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/rake"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/shell"
	_ "github.com/Prelang/prelang-buildpack/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/Prelang/prelang-buildpack/internal/app"
	_ "github.com/Prelang/prelang-buildpack/internal/engine/eviction"
	_ "github.com/Prelang/prelang-buildpack/internal/engine/framework"
)
