package framework

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/bundler" //nolint:depguard // Wired in engine wiring
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the framework registry Graft node.
const NodeID graft.ID = "engine.framework"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{bundler.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			gems, err := graft.Dep[ports.GemInspector](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(NewRails4(gems), NewRails3(gems)), nil
		},
	})
}
