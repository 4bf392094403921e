package overpass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/config"
	"go.trai.ch/bdroads/internal/core/ports"
)

// NodeID is the unique identifier for the network provider Graft node.
const NodeID graft.ID = "adapter.network_provider"

func init() {
	graft.Register(graft.Node[ports.NetworkProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.NetworkProvider, error) {
			settings, err := graft.Dep[config.SettingsFunc](ctx)
			if err != nil {
				return nil, err
			}
			return NewLazy(settings), nil
		},
	})
}
