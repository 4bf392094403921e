package app

import "go.trai.ch/bdroads/internal/core/ports"

// Components contains the application components resolved from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
