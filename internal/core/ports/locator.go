// Package ports defines the core interfaces for the application.
package ports

// Locator maps a resource name to absolute, existing paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate resolves name against currentDir and the locator's search paths.
	// With all set it returns every match in search order, otherwise only the first.
	// It returns a *domain.NotFoundError when nothing matches.
	Locate(name, currentDir string, all bool) ([]string, error)
}
