package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/bdroads/internal/core/ports/mocks"
	"go.trai.ch/bdroads/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	store      *mocks.MockCacheStore
	network    *mocks.MockNetworkProvider
	boundaries *mocks.MockBoundaryProvider
	analyzer   *mocks.MockGraphAnalyzer
	telemetry  *mocks.MockTelemetry
	vertex     *mocks.MockVertex
	logger     *mocks.MockLogger
	orch       *orchestrator.Orchestrator
}

// newHarness wires an orchestrator to mocks. Telemetry and info logging are
// permissive; everything else must be expected explicitly.
func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		store:      mocks.NewMockCacheStore(ctrl),
		network:    mocks.NewMockNetworkProvider(ctrl),
		boundaries: mocks.NewMockBoundaryProvider(ctrl),
		analyzer:   mocks.NewMockGraphAnalyzer(ctrl),
		telemetry:  mocks.NewMockTelemetry(ctrl),
		vertex:     mocks.NewMockVertex(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	h.orch = orchestrator.NewFactory(h.network, h.boundaries, h.analyzer, h.telemetry, h.logger).For(h.store)
	return h
}

func (h *harness) permissiveTelemetry() {
	h.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, h.vertex), h.vertex
		}).AnyTimes()
	h.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	h.vertex.EXPECT().Cached().AnyTimes()
	h.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
}

var (
	analysis = domain.AnalysisConfig{BetweennessThreshold: 5000, BetweennessSample: 1000}

	request = orchestrator.Request{
		Region:      "Bangladesh",
		NetworkType: domain.NetworkDrive,
		Analysis:    analysis,
	}
)

func fixtures() (*domain.NetworkGraph, *domain.BoundarySet, *domain.StatsSnapshot) {
	g := &domain.NetworkGraph{
		ID:          "graph-1",
		Region:      "Bangladesh",
		NetworkType: domain.NetworkDrive,
		Nodes:       []domain.RoadNode{{ID: 1}, {ID: 2}},
		Edges:       []domain.RoadEdge{{From: 1, To: 2, Highway: "primary"}},
	}
	b := &domain.BoundarySet{Region: "Bangladesh", Source: domain.BoundarySource{Provider: "nominatim"}}
	s := &domain.StatsSnapshot{
		NodeCount:      2,
		EdgeCount:      1,
		ComponentCount: 1,
		IsConnected:    true,
		ComputedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		SourceGraphID:  "graph-1",
	}
	return g, b, s
}

func TestRun_EmptyCache(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, s := fixtures()

	gomock.InOrder(
		h.store.EXPECT().Has(domain.ArtifactGraph).Return(false),
		h.network.EXPECT().DownloadNetwork(gomock.Any(), "Bangladesh", domain.NetworkDrive).Return(g, nil),
		h.store.EXPECT().SaveGraph(g).Return(nil),
		h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(false),
		h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), "Bangladesh").Return(b, nil),
		h.store.EXPECT().SaveBoundaries(b).Return(nil),
		h.store.EXPECT().Has(domain.ArtifactStats).Return(false),
		h.analyzer.EXPECT().ComputeStats(gomock.Any(), g, analysis).Return(s, nil),
		h.store.EXPECT().SaveStats(s).Return(nil),
	)

	res, err := h.orch.Run(context.Background(), request)
	require.NoError(t, err)

	assert.Same(t, g, res.Graph)
	assert.Same(t, b, res.Boundaries)
	assert.Same(t, s, res.Stats)
	assert.Equal(t, map[domain.ArtifactKind]domain.ArtifactSource{
		domain.ArtifactGraph:      domain.SourceRegenerated,
		domain.ArtifactBoundaries: domain.SourceRegenerated,
		domain.ArtifactStats:      domain.SourceRegenerated,
	}, res.Sources)
}

func TestRun_FullCacheMakesNoCollaboratorCalls(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, s := fixtures()

	h.store.EXPECT().Has(gomock.Any()).Return(true).Times(3)
	h.store.EXPECT().LoadGraph().Return(g, nil)
	h.store.EXPECT().LoadBoundaries().Return(b, nil)
	h.store.EXPECT().LoadStats().Return(s, nil)

	res, err := h.orch.Run(context.Background(), request)
	require.NoError(t, err)

	assert.Same(t, g, res.Graph)
	assert.Same(t, b, res.Boundaries)
	assert.Same(t, s, res.Stats)
	for _, kind := range domain.AllArtifactKinds() {
		assert.Equal(t, domain.SourceCache, res.Sources[kind], kind)
	}
}

func TestRun_ForceDownload(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, _ := fixtures()
	fresh := &domain.StatsSnapshot{SourceGraphID: g.ID, NodeCount: 2}

	req := request
	req.Force = domain.ForceFlags{Graph: true}

	// Neither graph nor stats are looked up in the cache; boundaries are.
	h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(true)
	h.store.EXPECT().LoadBoundaries().Return(b, nil)
	h.network.EXPECT().DownloadNetwork(gomock.Any(), "Bangladesh", domain.NetworkDrive).Return(g, nil)
	h.store.EXPECT().SaveGraph(g).Return(nil)
	h.analyzer.EXPECT().ComputeStats(gomock.Any(), g, analysis).Return(fresh, nil)
	h.store.EXPECT().SaveStats(fresh).Return(nil)

	res, err := h.orch.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Same(t, fresh, res.Stats)
	assert.Equal(t, domain.SourceRegenerated, res.Sources[domain.ArtifactGraph])
	assert.Equal(t, domain.SourceCache, res.Sources[domain.ArtifactBoundaries])
	assert.Equal(t, domain.SourceRegenerated, res.Sources[domain.ArtifactStats])
}

func TestRun_ForceAnalysis(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, s := fixtures()

	req := request
	req.Force = domain.ForceFlags{Stats: true}

	h.store.EXPECT().Has(domain.ArtifactGraph).Return(true)
	h.store.EXPECT().LoadGraph().Return(g, nil)
	h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(true)
	h.store.EXPECT().LoadBoundaries().Return(b, nil)
	h.analyzer.EXPECT().ComputeStats(gomock.Any(), g, analysis).Return(s, nil)
	h.store.EXPECT().SaveStats(s).Return(nil)

	res, err := h.orch.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceCache, res.Sources[domain.ArtifactGraph])
	assert.Equal(t, domain.SourceRegenerated, res.Sources[domain.ArtifactStats])
}

func TestRun_ForceBoundaries(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, s := fixtures()

	req := request
	req.Force = domain.ForceFlags{Boundaries: true}

	h.store.EXPECT().Has(domain.ArtifactGraph).Return(true)
	h.store.EXPECT().LoadGraph().Return(g, nil)
	h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), "Bangladesh").Return(b, nil)
	h.store.EXPECT().SaveBoundaries(b).Return(nil)
	h.store.EXPECT().Has(domain.ArtifactStats).Return(true)
	h.store.EXPECT().LoadStats().Return(s, nil)

	res, err := h.orch.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceRegenerated, res.Sources[domain.ArtifactBoundaries])
	assert.Equal(t, domain.SourceCache, res.Sources[domain.ArtifactStats])
}

func TestRun_LoadFailuresFallBackToRegeneration(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
		warning string
	}{
		{
			name:    "corrupt",
			loadErr: errors.Join(domain.ErrCacheCorrupt, zerr.New("checksum mismatch")),
			warning: "cached road network is corrupt, regenerating",
		},
		{
			name:    "missing",
			loadErr: errors.Join(domain.ErrCacheMiss, zerr.New("artifact not cached")),
			warning: "cached road network is missing, regenerating",
		},
		{
			name:    "other",
			loadErr: errors.New("permission denied"),
			warning: "cached road network is unreadable, regenerating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.permissiveTelemetry()
			g, b, s := fixtures()

			h.store.EXPECT().Has(gomock.Any()).Return(true).Times(3)
			h.store.EXPECT().LoadGraph().Return(nil, tt.loadErr)
			h.logger.EXPECT().Warn(tt.warning)
			h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil)
			h.store.EXPECT().SaveGraph(g).Return(nil)
			h.store.EXPECT().LoadBoundaries().Return(b, nil)
			h.store.EXPECT().LoadStats().Return(s, nil)

			res, err := h.orch.Run(context.Background(), request)
			require.NoError(t, err)
			assert.Equal(t, domain.SourceRegenerated, res.Sources[domain.ArtifactGraph])
		})
	}
}

func TestRun_StaleStatsAreRecomputed(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, _ := fixtures()
	stale := &domain.StatsSnapshot{SourceGraphID: "graph-0"}
	fresh := &domain.StatsSnapshot{SourceGraphID: g.ID}

	h.store.EXPECT().Has(gomock.Any()).Return(true).Times(3)
	h.store.EXPECT().LoadGraph().Return(g, nil)
	h.store.EXPECT().LoadBoundaries().Return(b, nil)
	h.store.EXPECT().LoadStats().Return(stale, nil)
	h.logger.EXPECT().Warn("cached connectivity stats is stale, regenerating")
	h.analyzer.EXPECT().ComputeStats(gomock.Any(), g, analysis).Return(fresh, nil)
	h.store.EXPECT().SaveStats(fresh).Return(nil)

	res, err := h.orch.Run(context.Background(), request)
	require.NoError(t, err)
	assert.Same(t, fresh, res.Stats)
}

func TestRun_DownloadFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	downloadErr := errors.Join(domain.ErrDownload, zerr.New("overpass request failed"))

	h.store.EXPECT().Has(domain.ArtifactGraph).Return(false)
	h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, downloadErr)

	res, err := h.orch.Run(context.Background(), request)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrDownload))
}

func TestRun_SaveFailureIsFatal(t *testing.T) {
	t.Run("persist error passes through", func(t *testing.T) {
		h := newHarness(t)
		h.permissiveTelemetry()
		g, _, _ := fixtures()

		h.store.EXPECT().Has(domain.ArtifactGraph).Return(false)
		h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil)
		h.store.EXPECT().SaveGraph(g).Return(errors.Join(domain.ErrPersist, zerr.New("disk full")))

		_, err := h.orch.Run(context.Background(), request)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPersist))
	})

	t.Run("other errors are classified", func(t *testing.T) {
		h := newHarness(t)
		h.permissiveTelemetry()
		g, b, _ := fixtures()

		h.store.EXPECT().Has(domain.ArtifactGraph).Return(true)
		h.store.EXPECT().LoadGraph().Return(g, nil)
		h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(false)
		h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), gomock.Any()).Return(b, nil)
		h.store.EXPECT().SaveBoundaries(b).Return(errors.New("read-only file system"))

		_, err := h.orch.Run(context.Background(), request)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPersist))
	})
}

func TestRun_BoundaryFailure(t *testing.T) {
	fetchErr := errors.Join(domain.ErrDownload, zerr.New("nominatim returned an unexpected status"))

	t.Run("fatal by default", func(t *testing.T) {
		h := newHarness(t)
		h.permissiveTelemetry()
		g, _, _ := fixtures()

		h.store.EXPECT().Has(domain.ArtifactGraph).Return(false)
		h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil)
		// The graph is persisted before the failing stage.
		h.store.EXPECT().SaveGraph(g).Return(nil)
		h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(false)
		h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), gomock.Any()).Return(nil, fetchErr)

		_, err := h.orch.Run(context.Background(), request)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDownload))
	})

	t.Run("skipped when optional", func(t *testing.T) {
		h := newHarness(t)
		h.permissiveTelemetry()
		g, _, s := fixtures()

		req := request
		req.BoundariesOptional = true

		h.store.EXPECT().Has(domain.ArtifactGraph).Return(true)
		h.store.EXPECT().LoadGraph().Return(g, nil)
		h.store.EXPECT().Has(domain.ArtifactBoundaries).Return(false)
		h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), gomock.Any()).Return(nil, fetchErr)
		h.logger.EXPECT().Warn("could not obtain district boundaries, continuing without them: " +
			"download failed: nominatim returned an unexpected status")
		h.store.EXPECT().Has(domain.ArtifactStats).Return(true)
		h.store.EXPECT().LoadStats().Return(s, nil)

		res, err := h.orch.Run(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, res.Boundaries)
		assert.Equal(t, domain.SourceSkipped, res.Sources[domain.ArtifactBoundaries])
	})
}

func TestRun_AnalysisFailureKeepsEarlierArtifacts(t *testing.T) {
	h := newHarness(t)
	h.permissiveTelemetry()
	g, b, _ := fixtures()
	analysisErr := errors.Join(domain.ErrAnalysisFailed, zerr.New("edge references an unknown node"))

	h.store.EXPECT().Has(gomock.Any()).Return(false).Times(3)
	h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil)
	h.store.EXPECT().SaveGraph(g).Return(nil)
	h.boundaries.EXPECT().FetchBoundaries(gomock.Any(), gomock.Any()).Return(b, nil)
	h.store.EXPECT().SaveBoundaries(b).Return(nil)
	h.analyzer.EXPECT().ComputeStats(gomock.Any(), g, analysis).Return(nil, analysisErr)

	_, err := h.orch.Run(context.Background(), request)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAnalysisFailed))
}

func TestRun_InvalidNetworkType(t *testing.T) {
	h := newHarness(t)

	req := request
	req.NetworkType = "boat"

	_, err := h.orch.Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

func TestRun_RecordsStages(t *testing.T) {
	h := newHarness(t)
	g, b, s := fixtures()

	h.store.EXPECT().Has(gomock.Any()).Return(true).Times(3)
	h.store.EXPECT().LoadGraph().Return(g, nil)
	h.store.EXPECT().LoadBoundaries().Return(b, nil)
	h.store.EXPECT().LoadStats().Return(s, nil)

	var stages []string
	h.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string) (context.Context, ports.Vertex) {
			stages = append(stages, name)
			return ports.ContextWithVertex(ctx, h.vertex), h.vertex
		}).Times(3)
	h.vertex.EXPECT().Cached().Times(3)
	h.vertex.EXPECT().Complete(nil).Times(3)

	_, err := h.orch.Run(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, []string{"resolve graph", "resolve boundaries", "resolve stats"}, stages)
}

func TestRun_FailedStageCompletesVertexWithError(t *testing.T) {
	h := newHarness(t)
	downloadErr := errors.Join(domain.ErrDownload, zerr.New("timeout"))

	h.telemetry.EXPECT().Record(gomock.Any(), "resolve graph").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, h.vertex), h.vertex
		})
	h.store.EXPECT().Has(domain.ArtifactGraph).Return(false)
	h.network.EXPECT().DownloadNetwork(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.NetworkType) (*domain.NetworkGraph, error) {
			v, ok := ports.VertexFromContext(ctx)
			assert.True(t, ok, "collaborators receive the stage vertex")
			assert.Equal(t, h.vertex, v)
			return nil, downloadErr
		})
	h.vertex.EXPECT().Complete(downloadErr)

	_, err := h.orch.Run(context.Background(), request)
	require.Error(t, err)
}
