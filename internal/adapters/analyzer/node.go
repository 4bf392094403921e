package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdroads/internal/core/ports"
)

// NodeID is the unique identifier for the graph analyzer Graft node.
const NodeID graft.ID = "adapter.graph_analyzer"

func init() {
	graft.Register(graft.Node[ports.GraphAnalyzer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphAnalyzer, error) {
			return New(), nil
		},
	})
}
