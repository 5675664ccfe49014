// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/doccache/internal/adapters/config"
	_ "go.trai.ch/doccache/internal/adapters/logger"
	_ "go.trai.ch/doccache/internal/adapters/parser"
	_ "go.trai.ch/doccache/internal/adapters/source"
	// Register app and engine nodes.
	_ "go.trai.ch/doccache/internal/app"
	_ "go.trai.ch/doccache/internal/engine/cache"
)
