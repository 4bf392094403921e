package orchestrator

import "go.trai.ch/bdroads/internal/core/ports"

// Factory holds the collaborators shared by every run and binds them to a cache store.
type Factory struct {
	network    ports.NetworkProvider
	boundaries ports.BoundaryProvider
	analyzer   ports.GraphAnalyzer
	telemetry  ports.Telemetry
	logger     ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	network ports.NetworkProvider,
	boundaries ports.BoundaryProvider,
	analyzer ports.GraphAnalyzer,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Factory {
	return &Factory{
		network:    network,
		boundaries: boundaries,
		analyzer:   analyzer,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// For returns an Orchestrator reading and writing store.
func (f *Factory) For(store ports.CacheStore) *Orchestrator {
	return New(store, f.network, f.boundaries, f.analyzer, f.telemetry, f.logger)
}
