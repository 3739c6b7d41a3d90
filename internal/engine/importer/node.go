package importer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/adapters/loader"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/core/ports"
)

// NodeID is the unique identifier for the importer Graft node.
const NodeID graft.ID = "engine.importer"

func init() {
	graft.Register(graft.Node[*Importer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LocatorNodeID,
			loader.ResolverNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Importer, error) {
			locator, err := graft.Dep[*fs.Locator](ctx)
			if err != nil {
				return nil, err
			}

			loaders, err := graft.Dep[ports.LoaderResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(locator, loaders, log, tel), nil
		},
	})
}
