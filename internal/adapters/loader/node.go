package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/adapters/logger"
	"go.trai.ch/fresh/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the loader resolver Graft node.
const ResolverNodeID graft.ID = "adapter.loader.resolver"

func init() {
	graft.Register(graft.Node[ports.LoaderResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LoaderResolver, error) {
			locator, err := graft.Dep[*fs.Locator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Default(locator, log), nil
		},
	})
}
