package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
)

const (
	WalkerNodeID  graft.ID = "adapter.fs.walker"
	LocatorNodeID graft.ID = "adapter.fs.locator"
	HasherNodeID  graft.ID = "adapter.fs.hasher"
)

// SearchPathEnv lists extra locator search directories, separated by the OS list separator.
const SearchPathEnv = "FRESH_PATH"

func init() {
	// Walker Node (Concrete implementation needed by Hasher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Locator Node (concrete so the CLI can add search paths)
	graft.Register(graft.Node[*Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Locator, error) {
			return NewLocator(filepath.SplitList(os.Getenv(SearchPathEnv))...), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (*Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})
}
