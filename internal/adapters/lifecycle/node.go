package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the lifecycle bus Graft node.
const NodeID graft.ID = "adapter.lifecycle"

func init() {
	graft.Register(graft.Node[*Bus]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Bus, error) {
			return NewBus(), nil
		},
	})
}
