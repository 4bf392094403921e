package domain

import "time"

// CentralitySummary holds averaged centrality measures of the road graph.
type CentralitySummary struct {
	// Computed is false when the graph was too small for centrality to be defined.
	Computed       bool    `json:"computed"`
	AvgDegree      float64 `json:"avg_degree"`
	AvgBetweenness float64 `json:"avg_betweenness"`
	// Sampled is true when betweenness was computed on a node sample only.
	Sampled    bool `json:"sampled"`
	SampleSize int  `json:"sample_size,omitempty"`
}

// StatsSnapshot is the precomputed connectivity metrics of a NetworkGraph.
type StatsSnapshot struct {
	NodeCount      int               `json:"node_count"`
	EdgeCount      int               `json:"edge_count"`
	ComponentCount int               `json:"component_count"`
	IsConnected    bool              `json:"is_connected"`
	Centrality     CentralitySummary `json:"centrality"`
	ComputedAt     time.Time         `json:"computed_at"`
	// SourceGraphID is the ID of the NetworkGraph the snapshot was derived from.
	SourceGraphID string `json:"source_graph_id"`
}

// DerivedFrom reports whether the snapshot was computed from g.
func (s *StatsSnapshot) DerivedFrom(g *NetworkGraph) bool {
	return g != nil && s.SourceGraphID != "" && s.SourceGraphID == g.ID
}
