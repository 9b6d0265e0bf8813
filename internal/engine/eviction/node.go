package eviction

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/Prelang/prelang-buildpack/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the eviction policy Graft node.
const NodeID graft.ID = "engine.eviction"

func init() {
	graft.Register(graft.Node[*Policy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.IndexerNodeID, fs.RemoverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Policy, error) {
			indexer, err := graft.Dep[ports.FileIndexer](ctx)
			if err != nil {
				return nil, err
			}
			remover, err := graft.Dep[ports.FileRemover](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPolicy(indexer, remover, log), nil
		},
	})
}
