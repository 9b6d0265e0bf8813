package logger

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// ConfigurerNodeID is the unique identifier for the log configurer Graft node.
	ConfigurerNodeID graft.ID = "adapter.logger.configurer"

	concreteNodeID graft.ID = "adapter.logger.slog"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        concreteNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{concreteNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})

	graft.Register(graft.Node[ports.LogConfigurer]{
		ID:        ConfigurerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{concreteNodeID},
		Run: func(ctx context.Context) (ports.LogConfigurer, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}
