package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/lifecycle" //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/session"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			session.NodeID,
			lifecycle.NodeID,
			fs.NodeID,
			logger.NodeID,
			linear.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := graft.Dep[*session.Manager](ctx)
	if err != nil {
		return nil, err
	}

	bus, err := graft.Dep[*lifecycle.Bus](ctx)
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

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sessions, bus, fileSystem, log, reporter, w, tracer), nil
}
