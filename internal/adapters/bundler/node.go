package bundler

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the gem inspector Graft node.
const NodeID graft.ID = "adapter.bundler"

func init() {
	graft.Register(graft.Node[ports.GemInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GemInspector, error) {
			return NewLockfile(), nil
		},
	})
}
