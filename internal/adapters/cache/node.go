package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/checker"
	"go.trai.ch/fresh/internal/core/ports"
)

// NodeID is the unique identifier for the cache opener Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{checker.NodeID},
		Run: func(ctx context.Context) (ports.CacheOpener, error) {
			self, err := graft.Dep[ports.ResourceChecker](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(self), nil
		},
	})
}
