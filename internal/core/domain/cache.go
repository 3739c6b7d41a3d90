package domain

import "time"

// DefaultCacheFile is the cache artifact path used when none is given.
const DefaultCacheFile = ".fresh/cache.json"

// MetaSuffix is appended to the cache path to name its metadata file.
const MetaSuffix = ".meta"

// CacheMeta is the recorded dependency state stored beside a cache artifact.
type CacheMeta struct {
	Resources []TrackedResource `json:"resources"`
}

// Compiled is the outcome of compiling an entry resource.
type Compiled struct {
	Entry     string            `json:"entry"`
	Document  Document          `json:"document"`
	Resources []TrackedResource `json:"-"`
	FromCache bool              `json:"-"`
	BuiltAt   time.Time         `json:"-"`
}
