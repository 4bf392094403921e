package nominatim

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/config"
	"go.trai.ch/bdroads/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the lazily built Nominatim client Graft node.
	NodeID graft.ID = "adapter.nominatim"
	// BoundaryProviderNodeID is the unique identifier for the boundary provider Graft node.
	BoundaryProviderNodeID graft.ID = "adapter.boundary_provider"
	// GeocoderNodeID is the unique identifier for the geocoder Graft node.
	GeocoderNodeID graft.ID = "adapter.geocoder"
)

func init() {
	graft.Register(graft.Node[*Lazy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Lazy, error) {
			settings, err := graft.Dep[config.SettingsFunc](ctx)
			if err != nil {
				return nil, err
			}
			return NewLazy(settings), nil
		},
	})

	graft.Register(graft.Node[ports.BoundaryProvider]{
		ID:        BoundaryProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.BoundaryProvider, error) {
			client, err := graft.Dep[*Lazy](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.Geocoder]{
		ID:        GeocoderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Geocoder, error) {
			client, err := graft.Dep[*Lazy](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
