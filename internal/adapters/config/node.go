package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/logger"
	"go.trai.ch/bdroads/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the provider settings Graft node.
	SettingsNodeID graft.ID = "adapter.provider_settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[SettingsFunc]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (SettingsFunc, error) {
			return LazySettings(), nil
		},
	})
}
