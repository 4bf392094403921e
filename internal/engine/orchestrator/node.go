package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/adapters/analyzer"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bdroads/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bdroads/internal/adapters/nominatim"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bdroads/internal/adapters/overpass"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bdroads/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bdroads/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator factory Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			overpass.NodeID,
			nominatim.BoundaryProviderNodeID,
			analyzer.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			network, err := graft.Dep[ports.NetworkProvider](ctx)
			if err != nil {
				return nil, err
			}

			boundaries, err := graft.Dep[ports.BoundaryProvider](ctx)
			if err != nil {
				return nil, err
			}

			graphAnalyzer, err := graft.Dep[ports.GraphAnalyzer](ctx)
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

			return NewFactory(network, boundaries, graphAnalyzer, telemetry, log), nil
		},
	})
}
