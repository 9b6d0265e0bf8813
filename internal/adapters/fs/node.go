package fs

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	WalkerNodeID  graft.ID = "adapter.fs.walker"
	IndexerNodeID graft.ID = "adapter.fs.indexer"
	RemoverNodeID graft.ID = "adapter.fs.remover"
	GlobberNodeID graft.ID = "adapter.fs.globber"
)

func init() {
	// Walker Node (Concrete implementation needed by Indexer)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileIndexer]{
		ID:        IndexerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileIndexer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndexer(walker), nil
		},
	})

	graft.Register(graft.Node[ports.FileRemover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileRemover, error) {
			return NewRemover(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestLocator]{
		ID:        GlobberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLocator, error) {
			return NewGlobber(), nil
		},
	})
}
