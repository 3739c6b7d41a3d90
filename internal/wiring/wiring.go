// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fresh/internal/adapters/cache"
	_ "go.trai.ch/fresh/internal/adapters/checker"
	_ "go.trai.ch/fresh/internal/adapters/fs"
	_ "go.trai.ch/fresh/internal/adapters/loader"
	_ "go.trai.ch/fresh/internal/adapters/logger"
	_ "go.trai.ch/fresh/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/fresh/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/fresh/internal/app"
	_ "go.trai.ch/fresh/internal/engine/importer"
)
