// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/logshare/internal/adapters/cas"
	_ "go.trai.ch/logshare/internal/adapters/config"
	_ "go.trai.ch/logshare/internal/adapters/logger"
	_ "go.trai.ch/logshare/internal/adapters/render"
	_ "go.trai.ch/logshare/internal/adapters/sqlite"
	// Register app nodes.
	_ "go.trai.ch/logshare/internal/app"
)
