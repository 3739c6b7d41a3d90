package ports

import (
	"context"

	"go.trai.ch/fresh/internal/core/domain"
)

// Importer resolves import statements on behalf of loaders.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type Importer interface {
	// Import loads the requested resource, expanding globs and guarding against cycles.
	Import(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error)
}

// Loader turns a located resource into an artifact.
type Loader interface {
	// Supports reports whether this loader handles the resource with the given type hint.
	Supports(resource any, typ string) bool
	// Load reads the resource. Nested imports must go through imp with the same ctx.
	Load(ctx context.Context, resource any, typ string, imp Importer) (any, error)
}

// FileLoader is a Loader whose resources are files found through a Locator.
type FileLoader interface {
	Loader
	// Locator returns the locator used to resolve this loader's resources.
	Locator() Locator
}

// LoaderResolver selects the loader responsible for a resource.
type LoaderResolver interface {
	// Resolve returns the first loader supporting the resource, or domain.ErrLoaderNotFound.
	Resolve(resource any, typ string) (Loader, error)
}
