package checker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/ports"
)

// NodeID is the unique identifier for the resource checker Graft node.
const NodeID graft.ID = "adapter.checker"

func init() {
	graft.Register(graft.Node[ports.ResourceChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ResourceChecker, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelfChecking(hasher), nil
		},
	})
}
