package ports

import (
	"context"

	"go.trai.ch/fresh/internal/core/domain"
)

type trackerKey struct{}

// ContextWithTracker returns a context carrying the resource set that loaders record into.
func ContextWithTracker(ctx context.Context, set *domain.ResourceSet) context.Context {
	return context.WithValue(ctx, trackerKey{}, set)
}

// TrackResource records r in the context's resource set, if any.
func TrackResource(ctx context.Context, r domain.TrackedResource) {
	if set, ok := ctx.Value(trackerKey{}).(*domain.ResourceSet); ok && set != nil {
		set.Add(r)
	}
}

// TrackerFromContext returns the context's resource set, or nil.
func TrackerFromContext(ctx context.Context) *domain.ResourceSet {
	set, _ := ctx.Value(trackerKey{}).(*domain.ResourceSet)
	return set
}
