package hooks

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/logger"
	"github.com/Prelang/prelang-buildpack/internal/adapters/shell"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the hook runner Graft node.
const NodeID graft.ID = "adapter.hooks"

func init() {
	graft.Register(graft.Node[ports.HookRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HookRunner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor, log), nil
		},
	})
}
