package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/leaflet"            //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/nominatim"          //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/overpass"           //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/bdroads/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			orchestrator.NodeID,
			overpass.NodeID,
			nominatim.BoundaryProviderNodeID,
			leaflet.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.CacheOpener](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*orchestrator.Factory](ctx)
	if err != nil {
		return nil, err
	}

	network, err := graft.Dep[ports.NetworkProvider](ctx)
	if err != nil {
		return nil, err
	}

	boundaries, err := graft.Dep[ports.BoundaryProvider](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.MapRenderer](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, factory, network, boundaries, renderer, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
