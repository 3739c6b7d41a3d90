package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/importer"
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
			importer.NodeID,
			cache.NodeID,
			watcher.NodeID,
			fs.LocatorNodeID,
			logger.NodeID,
			progrock.NodeID,
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
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	imp, err := graft.Dep[*importer.Importer](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[ports.CacheOpener](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[*fs.Locator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(imp, caches, watchers, locator, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
