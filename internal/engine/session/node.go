package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/lifecycle" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/linear"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/core/ports"
)

// NodeID is the unique identifier for the session manager Graft node.
const NodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			fs.NodeID,
			logger.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
			lifecycle.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.DiagnosticsReporter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*lifecycle.Bus](ctx)
			if err != nil {
				return nil, err
			}

			bootstrapper := NewBootstrapper(compiler, fileSystem, log, reporter, tracer, bus)
			return NewManager(NewRegistry(), bootstrapper), nil
		},
	})
}
