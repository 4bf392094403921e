package app_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bdroads/internal/app"
	"go.trai.ch/bdroads/internal/core/domain"
)

var reportDate = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// inDhaka pins the local zone so timestamps render as 09:04:05.
func inDhaka(t *testing.T) {
	t.Helper()
	local := time.Local
	time.Local = time.FixedZone("BST", 6*60*60)
	t.Cleanup(func() { time.Local = local })
}

func TestWriteReport(t *testing.T) {
	tests := []struct {
		name  string
		stats *domain.StatsSnapshot
	}{
		{
			name: "report_sampled",
			stats: &domain.StatsSnapshot{
				NodeCount:      12345,
				EdgeCount:      23456,
				ComponentCount: 3,
				Centrality: domain.CentralitySummary{
					Computed:       true,
					AvgDegree:      0.00012,
					AvgBetweenness: 0.0023,
					Sampled:        true,
					SampleSize:     1000,
				},
				ComputedAt: reportDate,
			},
		},
		{
			name: "report_exact",
			stats: &domain.StatsSnapshot{
				NodeCount:      4,
				EdgeCount:      3,
				ComponentCount: 1,
				IsConnected:    true,
				Centrality: domain.CentralitySummary{
					Computed:       true,
					AvgDegree:      0.5,
					AvgBetweenness: 0.3333,
				},
				ComputedAt: reportDate,
			},
		},
		{
			name: "report_tiny",
			stats: &domain.StatsSnapshot{
				NodeCount:      2,
				EdgeCount:      1,
				ComponentCount: 1,
				IsConnected:    true,
				ComputedAt:     reportDate.In(time.FixedZone("EST", -5*60*60)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			inDhaka(t)
			var buf bytes.Buffer

			require.NoError(t, app.WriteReport(&buf, "Bangladesh", tt.stats))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestWriteReport_NilStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, app.WriteReport(&buf, "Bangladesh", nil))
	assert.Empty(t, buf.String())
}

func TestWriteCacheInfo(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	inDhaka(t)
	var buf bytes.Buffer

	entries := []domain.CacheEntryInfo{
		{Kind: domain.ArtifactGraph, Present: true, SizeBytes: 2621440, LastModified: reportDate},
		{Kind: domain.ArtifactBoundaries},
		{Kind: domain.ArtifactStats, Present: true, SizeBytes: 512, LastModified: reportDate},
	}
	require.NoError(t, app.WriteCacheInfo(&buf, entries))

	g := goldie.New(t)
	g.Assert(t, "cache_info", buf.Bytes())
}
