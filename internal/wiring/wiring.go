// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/repin/internal/adapters/logger"
	_ "go.trai.ch/repin/internal/adapters/yamldoc"
	// Register app nodes.
	_ "go.trai.ch/repin/internal/app"
)
