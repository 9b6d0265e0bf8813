package rake

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/logger"
	"github.com/Prelang/prelang-buildpack/internal/adapters/shell"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task runner factory Graft node.
const NodeID graft.ID = "adapter.rake"

func init() {
	graft.Register(graft.Node[ports.TaskRunnerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TaskRunnerFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, log), nil
		},
	})
}
