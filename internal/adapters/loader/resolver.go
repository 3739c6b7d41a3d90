package loader

import (
	"slices"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LoaderResolver = (*Resolver)(nil)

// Resolver selects the first registered loader that supports a resource.
type Resolver struct {
	loaders []ports.Loader
}

// NewResolver creates a Resolver trying loaders in order.
func NewResolver(loaders ...ports.Loader) *Resolver {
	return &Resolver{loaders: loaders}
}

// Resolve returns the loader for resource and typ.
func (r *Resolver) Resolve(resource any, typ string) (ports.Loader, error) {
	for _, l := range r.loaders {
		if l.Supports(resource, typ) {
			return l, nil
		}
	}
	err := zerr.With(domain.ErrLoaderNotFound, "resource", domain.FormatResource(resource))
	if typ != "" {
		err = zerr.With(err, "type", typ)
	}
	return nil, err
}

// Default builds the resolver with every built-in loader. The directory
// loader takes the extensions of the file loaders.
func Default(locator ports.Locator, logger ports.Logger) *Resolver {
	yamlLoader := NewYAMLLoader(locator, logger)
	jsoncLoader := NewJSONCLoader(locator, logger)

	return NewResolver(
		NewDirectoryLoader(locator, logger, slices.Concat(yamlLoader.Extensions(), jsoncLoader.Extensions())...),
		yamlLoader,
		jsoncLoader,
	)
}
