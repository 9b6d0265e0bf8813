package app

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/console"   //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/envdir"    //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/hooks"     //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/rake"      //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/Prelang/prelang-buildpack/internal/engine/eviction"
	"github.com/Prelang/prelang-buildpack/internal/engine/framework"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			logger.ConfigurerNodeID,
			envdir.NodeID,
			cache.NodeID,
			rake.NodeID,
			fs.GlobberNodeID,
			hooks.NodeID,
			console.NodeID,
			telemetry.NodeID,
			eviction.NodeID,
			framework.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.LogConfig, err = graft.Dep[ports.LogConfigurer](ctx); err != nil {
		return nil, err
	}
	if deps.EnvReader, err = graft.Dep[ports.EnvReader](ctx); err != nil {
		return nil, err
	}
	if deps.CacheOpener, err = graft.Dep[ports.CacheOpener](ctx); err != nil {
		return nil, err
	}
	if deps.Tasks, err = graft.Dep[ports.TaskRunnerFactory](ctx); err != nil {
		return nil, err
	}
	if deps.Manifests, err = graft.Dep[ports.ManifestLocator](ctx); err != nil {
		return nil, err
	}
	if deps.Hooks, err = graft.Dep[ports.HookRunner](ctx); err != nil {
		return nil, err
	}
	if deps.Console, err = graft.Dep[ports.Console](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.TelemetryFactory](ctx); err != nil {
		return nil, err
	}

	policy, err := graft.Dep[*eviction.Policy](ctx)
	if err != nil {
		return nil, err
	}
	deps.Evictor = policy

	if deps.Frameworks, err = graft.Dep[*framework.Registry](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	out, err := graft.Dep[ports.Console](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     a,
		Logger:  log,
		Console: out,
	}, nil
}
