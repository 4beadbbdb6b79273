package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/core/ports"
)

// NodeID is the unique identifier for the diagnostics reporter Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[ports.DiagnosticsReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DiagnosticsReporter, error) {
			return NewReporter(nil), nil
		},
	})
}
