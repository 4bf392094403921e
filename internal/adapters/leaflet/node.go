package leaflet

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/logger"
	"go.trai.ch/bdroads/internal/adapters/nominatim"
	"go.trai.ch/bdroads/internal/core/ports"
)

// NodeID is the unique identifier for the map renderer Graft node.
const NodeID graft.ID = "adapter.map_renderer"

func init() {
	graft.Register(graft.Node[ports.MapRenderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nominatim.GeocoderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.MapRenderer, error) {
			geocoder, err := graft.Dep[ports.Geocoder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := NewRenderer(geocoder, log)
			if err != nil {
				return nil, err
			}
			return renderer, nil
		},
	})
}
