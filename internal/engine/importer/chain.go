package importer

import "context"

// link is one entry of the in-flight chain. Links are immutable, so a parent
// context never observes entries pushed by its children.
type link struct {
	resource any
	parent   *link
	depth    int
}

type chainKey struct{}

func chainFrom(ctx context.Context) *link {
	l, _ := ctx.Value(chainKey{}).(*link)
	return l
}

// withInFlight returns a child context in which resource is loading.
func withInFlight(ctx context.Context, resource any) context.Context {
	parent := chainFrom(ctx)
	depth := 1
	if parent != nil {
		depth = parent.depth + 1
	}
	return context.WithValue(ctx, chainKey{}, &link{resource: resource, parent: parent, depth: depth})
}

// isInFlight reports whether resource is being loaded by an enclosing import.
// Resources must be comparable.
func isInFlight(ctx context.Context, resource any) bool {
	for l := chainFrom(ctx); l != nil; l = l.parent {
		if l.resource == resource {
			return true
		}
	}
	return false
}

// InFlight returns the resources currently loading in ctx, outermost first.
func InFlight(ctx context.Context) []any {
	l := chainFrom(ctx)
	if l == nil {
		return nil
	}
	out := make([]any, l.depth)
	for ; l != nil; l = l.parent {
		out[l.depth-1] = l.resource
	}
	return out
}
