// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bdroads/internal/adapters/analyzer"
	_ "go.trai.ch/bdroads/internal/adapters/cache"
	_ "go.trai.ch/bdroads/internal/adapters/config"
	_ "go.trai.ch/bdroads/internal/adapters/leaflet"
	_ "go.trai.ch/bdroads/internal/adapters/logger"
	_ "go.trai.ch/bdroads/internal/adapters/nominatim"
	_ "go.trai.ch/bdroads/internal/adapters/overpass"
	_ "go.trai.ch/bdroads/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/bdroads/internal/app"
	_ "go.trai.ch/bdroads/internal/engine/orchestrator"
)
