package envdir

import (
	"context"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the env reader Graft node.
const NodeID graft.ID = "adapter.envdir"

func init() {
	graft.Register(graft.Node[ports.EnvReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvReader, error) {
			return NewReader(), nil
		},
	})
}
