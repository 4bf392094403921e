// Package orchestrator resolves the road graph, boundaries and connectivity
// statistics of a run, reusing cached artifacts where allowed.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
)

// errStale marks cached stats that were computed from a different graph.
var errStale = zerr.New("stats were derived from a different graph")

// Request describes one orchestrated run.
type Request struct {
	Region      string
	NetworkType domain.NetworkType
	Force       domain.ForceFlags
	Analysis    domain.AnalysisConfig
	// BoundariesOptional turns a boundary provider failure into a warning.
	BoundariesOptional bool
}

// Result holds the resolved artifacts of a run.
type Result struct {
	Graph      *domain.NetworkGraph
	Boundaries *domain.BoundarySet
	Stats      *domain.StatsSnapshot
	Sources    map[domain.ArtifactKind]domain.ArtifactSource
}

// Orchestrator drives the per-artifact state machine: INIT, LOAD, REGENERATE, DONE.
type Orchestrator struct {
	store      ports.CacheStore
	network    ports.NetworkProvider
	boundaries ports.BoundaryProvider
	analyzer   ports.GraphAnalyzer
	telemetry  ports.Telemetry
	logger     ports.Logger
}

// New creates a new Orchestrator over store.
func New(
	store ports.CacheStore,
	network ports.NetworkProvider,
	boundaries ports.BoundaryProvider,
	analyzer ports.GraphAnalyzer,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:      store,
		network:    network,
		boundaries: boundaries,
		analyzer:   analyzer,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// Run resolves graph, boundaries and stats in that order. Every regenerated
// artifact is saved before the next stage starts, so a failing run keeps the
// artifacts it already produced.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	if _, err := domain.ParseNetworkType(string(req.NetworkType)); err != nil {
		return nil, errors.Join(domain.ErrConfig, err)
	}

	force := req.Force.Effective()
	res := &Result{Sources: make(map[domain.ArtifactKind]domain.ArtifactSource, 3)}

	graph, src, err := resolve(ctx, o, stage[*domain.NetworkGraph]{
		kind:  domain.ArtifactGraph,
		force: force.Graph,
		verb:  "Downloading",
		load:  o.store.LoadGraph,
		regenerate: func(ctx context.Context) (*domain.NetworkGraph, error) {
			return o.network.DownloadNetwork(ctx, req.Region, req.NetworkType)
		},
		save: o.store.SaveGraph,
	})
	if err != nil {
		return nil, err
	}
	res.Graph, res.Sources[domain.ArtifactGraph] = graph, src

	boundaries, src, err := resolve(ctx, o, stage[*domain.BoundarySet]{
		kind:     domain.ArtifactBoundaries,
		force:    force.Boundaries,
		verb:     "Downloading",
		optional: req.BoundariesOptional,
		load:     o.store.LoadBoundaries,
		regenerate: func(ctx context.Context) (*domain.BoundarySet, error) {
			return o.boundaries.FetchBoundaries(ctx, req.Region)
		},
		save: o.store.SaveBoundaries,
	})
	if err != nil {
		return nil, err
	}
	res.Boundaries, res.Sources[domain.ArtifactBoundaries] = boundaries, src

	stats, src, err := resolve(ctx, o, stage[*domain.StatsSnapshot]{
		kind:  domain.ArtifactStats,
		force: force.Stats,
		verb:  "Computing",
		load:  o.store.LoadStats,
		check: func(s *domain.StatsSnapshot) error {
			if !s.DerivedFrom(graph) {
				return errStale
			}
			return nil
		},
		regenerate: func(ctx context.Context) (*domain.StatsSnapshot, error) {
			return o.analyzer.ComputeStats(ctx, graph, req.Analysis)
		},
		save: o.store.SaveStats,
	})
	if err != nil {
		return nil, err
	}
	res.Stats, res.Sources[domain.ArtifactStats] = stats, src

	return res, nil
}

type stage[T any] struct {
	kind  domain.ArtifactKind
	force bool
	verb  string
	// optional stages are skipped, not fatal, when regeneration fails.
	optional   bool
	load       func() (T, error)
	check      func(T) error
	regenerate func(context.Context) (T, error)
	save       func(T) error
}

func resolve[T any](ctx context.Context, o *Orchestrator, s stage[T]) (T, domain.ArtifactSource, error) {
	var zero T
	label := strings.ToLower(s.kind.Label())

	ctx, vertex := o.telemetry.Record(ctx, domain.StageName(s.kind))

	if !s.force && o.store.Has(s.kind) {
		o.logger.Info(fmt.Sprintf("Loading %s from cache...", label))
		v, err := s.load()
		if err == nil && s.check != nil {
			err = s.check(v)
		}
		if err == nil {
			vertex.Cached()
			vertex.Complete(nil)
			return v, domain.SourceCache, nil
		}
		msg := fmt.Sprintf("cached %s is %s, regenerating", label, fallbackReason(err))
		vertex.Log(domain.LogLevelWarn, msg)
		o.logger.Warn(msg)
	} else if s.force {
		vertex.Log(domain.LogLevelInfo, "refresh forced")
	}

	o.logger.Info(fmt.Sprintf("%s %s...", s.verb, label))
	v, err := s.regenerate(ctx)
	if err != nil {
		if s.optional {
			msg := fmt.Sprintf("could not obtain %s, continuing without them: %s", label, domain.ErrorLine(err))
			vertex.Log(domain.LogLevelWarn, domain.ErrorLine(err))
			o.logger.Warn(msg)
			vertex.Complete(nil)
			return zero, domain.SourceSkipped, nil
		}
		vertex.Complete(err)
		return zero, "", err
	}

	if err := s.save(v); err != nil {
		if !errors.Is(err, domain.ErrPersist) {
			err = errors.Join(domain.ErrPersist, err)
		}
		vertex.Complete(err)
		return zero, "", err
	}

	vertex.Complete(nil)
	return v, domain.SourceRegenerated, nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		return "missing"
	case errors.Is(err, domain.ErrCacheCorrupt):
		return "corrupt"
	case errors.Is(err, errStale):
		return "stale"
	default:
		return "unreadable"
	}
}
