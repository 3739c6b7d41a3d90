package cache

import "go.trai.ch/fresh/internal/core/ports"

var _ ports.CacheOpener = (*Opener)(nil)

// Opener creates ConfigCaches sharing one self-checking resource checker.
type Opener struct {
	self ports.ResourceChecker
}

// NewOpener creates an Opener.
func NewOpener(self ports.ResourceChecker) *Opener {
	return &Opener{self: self}
}

// Open returns the cache at path.
func (o *Opener) Open(path string, debug bool) ports.ConfigCache {
	return NewDefault(path, debug, o.self)
}
