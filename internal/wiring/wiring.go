// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reattach/internal/adapters/config"
	_ "go.trai.ch/reattach/internal/adapters/fs"
	_ "go.trai.ch/reattach/internal/adapters/logger"
	_ "go.trai.ch/reattach/internal/adapters/telemetry"
	_ "go.trai.ch/reattach/internal/adapters/teststate"
	// Register app nodes.
	_ "go.trai.ch/reattach/internal/app"
)
