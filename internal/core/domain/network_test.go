package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bdroads/internal/core/domain"
)

func TestParseNetworkType(t *testing.T) {
	for _, nt := range domain.NetworkTypes() {
		got, err := domain.ParseNetworkType(string(nt))
		require.NoError(t, err)
		assert.Equal(t, nt, got)
	}

	got, err := domain.ParseNetworkType(" Drive ")
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkDrive, got)

	_, err = domain.ParseNetworkType("boat")
	require.ErrorContains(t, err, domain.ErrInvalidNetworkType.Error())
}

func sampleGraph() *domain.NetworkGraph {
	return &domain.NetworkGraph{
		ID:          "g1",
		Region:      "Bangladesh",
		NetworkType: domain.NetworkDrive,
		Nodes: []domain.RoadNode{
			{ID: 1, Lat: 23.0, Lon: 90.0},
			{ID: 2, Lat: 24.0, Lon: 91.0},
			{ID: 3, Lat: 25.0, Lon: 92.0},
		},
		Edges: []domain.RoadEdge{
			{From: 1, To: 2, Highway: "primary_link"},
			{From: 2, To: 3, Highway: "residential"},
		},
	}
}

func TestNetworkGraph_Center(t *testing.T) {
	c, ok := sampleGraph().Center()
	require.True(t, ok)
	assert.InDelta(t, 24.0, c.Lat, 1e-9)
	assert.InDelta(t, 91.0, c.Lon, 1e-9)

	_, ok = (&domain.NetworkGraph{}).Center()
	assert.False(t, ok)
}

func TestNetworkGraph_FilterClasses(t *testing.T) {
	g := sampleGraph()

	major := g.FilterClasses([]string{"motorway", "trunk", "primary"})

	assert.Equal(t, 1, major.EdgeCount())
	assert.Equal(t, 2, major.NodeCount())
	assert.Equal(t, "g1", major.ID)
	// The source graph is not modified.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
}

func TestStatsSnapshot_DerivedFrom(t *testing.T) {
	g := sampleGraph()

	assert.True(t, (&domain.StatsSnapshot{SourceGraphID: "g1"}).DerivedFrom(g))
	assert.False(t, (&domain.StatsSnapshot{SourceGraphID: "other"}).DerivedFrom(g))
	assert.False(t, (&domain.StatsSnapshot{}).DerivedFrom(g))
	assert.False(t, (&domain.StatsSnapshot{SourceGraphID: "g1"}).DerivedFrom(nil))
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "#FF0000", cfg.RoadStyles["motorway"].Color)
	assert.Equal(t, "#808080", cfg.RoadStyles[domain.DefaultRoadClass].Color)
	assert.Len(t, cfg.Simple.Cities, 10)
	assert.Equal(t, domain.NetworkDrive, cfg.NetworkType)
}
