package cache

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/logger"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the cache opener Graft node.
const NodeID graft.ID = "adapter.cache_opener"

func init() {
	graft.Register(graft.Node[ports.CacheOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheOpener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(log), nil
		},
	})
}
