// Package analyzer computes connectivity statistics of road graphs with gonum.
package analyzer

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// minCentralityNodes is the smallest graph for which normalized betweenness is defined.
const minCentralityNodes = 3

// Analyzer implements ports.GraphAnalyzer.
type Analyzer struct {
	now func() time.Time
}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{now: time.Now}
}

// ComputeStats derives the connectivity snapshot of g. The road graph is
// treated as undirected; self-loops and parallel segments collapse into a
// single adjacency.
func (a *Analyzer) ComputeStats(
	ctx context.Context,
	g *domain.NetworkGraph,
	cfg domain.AnalysisConfig,
) (*domain.StatsSnapshot, error) {
	if g == nil {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New("graph is nil"))
	}

	snap := &domain.StatsSnapshot{
		NodeCount:     g.NodeCount(),
		EdgeCount:     g.EdgeCount(),
		SourceGraphID: g.ID,
	}

	ug, err := toUndirected(g)
	if err != nil {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.With(err, "graph_id", g.ID))
	}

	if snap.NodeCount > 0 {
		snap.ComponentCount = len(topo.ConnectedComponents(ug))
		snap.IsConnected = snap.ComponentCount == 1
	}
	logf(ctx, "%d nodes, %d edges, %d connected components", snap.NodeCount, snap.EdgeCount, snap.ComponentCount)

	if snap.NodeCount >= minCentralityNodes {
		centrality, err := centralities(ctx, ug, cfg)
		if err != nil {
			return nil, errors.Join(domain.ErrAnalysisFailed, zerr.With(err, "graph_id", g.ID))
		}
		snap.Centrality = centrality
	}

	snap.ComputedAt = a.now().UTC()
	return snap, nil
}

func toUndirected(g *domain.NetworkGraph) (*simple.UndirectedGraph, error) {
	ug := simple.NewUndirectedGraph()
	for _, n := range g.Nodes {
		if ug.Node(n.ID) != nil {
			continue
		}
		ug.AddNode(simple.Node(n.ID))
	}

	for _, e := range g.Edges {
		if ug.Node(e.From) == nil || ug.Node(e.To) == nil {
			return nil, zerr.With(zerr.New("edge references an unknown node"), "way_id", e.WayID)
		}
		if e.From == e.To {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return ug, nil
}

func centralities(ctx context.Context, ug *simple.UndirectedGraph, cfg domain.AnalysisConfig) (domain.CentralitySummary, error) {
	ids := nodeIDs(ug)
	n := float64(len(ids))

	var degreeSum float64
	for _, id := range ids {
		degreeSum += float64(ug.From(id).Len()) / (n - 1)
	}

	summary := domain.CentralitySummary{
		Computed:  true,
		AvgDegree: degreeSum / n,
	}

	var (
		scores  map[int64]float64
		sources = len(ids)
	)
	if cfg.BetweennessThreshold > 0 && len(ids) > cfg.BetweennessThreshold {
		sources = min(cfg.BetweennessSample, len(ids))
		summary.Sampled = true
		summary.SampleSize = sources
		logf(ctx, "sampling betweenness over %d of %d nodes", sources, len(ids))

		var err error
		scores, err = sampledBetweenness(ctx, ug, ids[:sources])
		if err != nil {
			return domain.CentralitySummary{}, err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return domain.CentralitySummary{}, zerr.Wrap(err, "analysis canceled")
		}
		scores = network.Betweenness(ug)
	}

	// Both accumulations count every pair once per direction; the n/k factor
	// extrapolates a sample to the whole graph.
	scale := (n / float64(sources)) / ((n - 1) * (n - 2))
	var betweennessSum float64
	for _, s := range scores {
		betweennessSum += s * scale
	}
	summary.AvgBetweenness = betweennessSum / n

	return summary, nil
}

func nodeIDs(g graph.Graph) []int64 {
	it := g.Nodes()
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.SortFunc(ids, cmp.Compare[int64])
	return ids
}

// sampledBetweenness runs the Brandes accumulation from the given sources only.
func sampledBetweenness(ctx context.Context, g graph.Undirected, sources []int64) (map[int64]float64, error) {
	cb := make(map[int64]float64)

	for _, s := range sources {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "analysis canceled")
		}

		var (
			stack = []int64{}
			preds = map[int64][]int64{}
			sigma = map[int64]float64{s: 1}
			dist  = map[int64]int{s: 0}
			queue = []int64{s}
		)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			to := g.From(v)
			for to.Next() {
				w := to.Node().ID()
				if _, seen := dist[w]; !seen {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		delta := make(map[int64]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	return cb, nil
}

func logf(ctx context.Context, format string, args ...any) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, fmt.Sprintf(format, args...))
	}
}
