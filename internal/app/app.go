// Package app implements the application layer for bdroads.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/bdroads/internal/engine/orchestrator"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	cacheOpener   ports.CacheOpener
	orchestrators *orchestrator.Factory
	network       ports.NetworkProvider
	boundaries    ports.BoundaryProvider
	renderer      ports.MapRenderer
	telemetry     ports.Telemetry
	logger        ports.Logger
	out           io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.CacheOpener,
	orchestrators *orchestrator.Factory,
	network ports.NetworkProvider,
	boundaries ports.BoundaryProvider,
	renderer ports.MapRenderer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		cacheOpener:   opener,
		orchestrators: orchestrators,
		network:       network,
		boundaries:    boundaries,
		renderer:      renderer,
		telemetry:     telemetry,
		logger:        log,
		out:           os.Stdout,
	}
}

// WithOutput sets the writer receiving reports and cache information.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// AnalyzeOptions configuration for the Analyze method.
type AnalyzeOptions struct {
	ConfigPath string
	CacheDir   string
	Output     string
	// NetworkType overrides the configured network type when non-empty.
	NetworkType string
	Force       domain.ForceFlags
}

// Analyze resolves the road network, boundaries and statistics, prints the
// connectivity report and renders the interactive map.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	var networkType domain.NetworkType
	if opts.NetworkType != "" {
		nt, err := domain.ParseNetworkType(opts.NetworkType)
		if err != nil {
			return errors.Join(domain.ErrConfig, err)
		}
		networkType = nt
	}

	cfg, err := a.loadConfig(opts.ConfigPath, opts.CacheDir)
	if err != nil {
		return err
	}
	if networkType != "" {
		cfg.NetworkType = networkType
	}
	if opts.Output != "" {
		cfg.Output.MapPath = opts.Output
	}

	store, err := a.cacheOpener.Open(cfg.CacheDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.telemetry.Close()
	}()

	a.logger.Info(fmt.Sprintf("Starting %s road connectivity analysis...", cfg.Region.Name))
	if err := a.printCacheInfo(store); err != nil {
		return err
	}
	if !opts.Force.Graph {
		a.logger.Info("Using cached data when available. Use --force-download to refresh data.")
	}

	res, err := a.orchestrators.For(store).Run(ctx, orchestrator.Request{
		Region:             cfg.Region.Name,
		NetworkType:        cfg.NetworkType,
		Force:              opts.Force,
		Analysis:           cfg.Analysis,
		BoundariesOptional: cfg.BoundariesOptional,
	})
	if err != nil {
		return err
	}

	if err := writeReport(a.out, cfg.Region.Name, res.Stats); err != nil {
		return err
	}

	if err := a.render(ctx, domain.MapData{
		Title:              cfg.Region.Name + " Road Network",
		Region:             cfg.Region,
		Graph:              res.Graph,
		Boundaries:         res.Boundaries,
		Cities:             cfg.Cities,
		RoadStyles:         cfg.RoadStyles,
		GeocodeConcurrency: cfg.GeocodeConcurrency,
		OutputPath:         cfg.Output.MapPath,
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Analysis complete! Open %s in your web browser to view the map.", cfg.Output.MapPath))
	return nil
}

// CacheOptions configuration for the CacheInfo and ClearCache methods.
type CacheOptions struct {
	ConfigPath string
	CacheDir   string
}

// CacheInfo prints the state of every cached artifact.
func (a *App) CacheInfo(_ context.Context, opts CacheOptions) error {
	store, err := a.openCache(opts)
	if err != nil {
		return err
	}
	return a.printCacheInfo(store)
}

// ClearCache removes every cached artifact.
func (a *App) ClearCache(_ context.Context, opts CacheOptions) error {
	store, err := a.openCache(opts)
	if err != nil {
		return err
	}

	entries, err := store.Describe()
	if err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return err
	}

	for _, e := range entries {
		if e.Present {
			a.logger.Info(fmt.Sprintf("Removed cache file: %s", e.Path))
		}
	}
	a.logger.Info("Cache cleared successfully!")
	return nil
}

// SimpleOptions configuration for the Simple method.
type SimpleOptions struct {
	ConfigPath string
	Output     string
}

// Simple renders a lightweight map: fixed city markers, the major roads
// around the region center and the region outline. Nothing is cached and
// provider failures only drop the affected layer.
func (a *App) Simple(ctx context.Context, opts SimpleOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		cfg.Output.SimpleMapPath = opts.Output
	}
	defer func() {
		_ = a.telemetry.Close()
	}()

	a.logger.Info(fmt.Sprintf("Creating simple %s road map...", cfg.Region.Name))

	graph := a.majorRoads(ctx, cfg)
	boundaries := a.outline(ctx, cfg)

	if err := a.render(ctx, domain.MapData{
		Title:              "Simple " + cfg.Region.Name + " Road Map",
		Region:             cfg.Region,
		Graph:              graph,
		Boundaries:         boundaries,
		Cities:             cfg.Simple.Cities,
		RoadStyles:         cfg.RoadStyles,
		GeocodeConcurrency: cfg.GeocodeConcurrency,
		Simple:             true,
		OutputPath:         cfg.Output.SimpleMapPath,
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Simple interactive map saved to %s", cfg.Output.SimpleMapPath))
	return nil
}

func (a *App) majorRoads(ctx context.Context, cfg *domain.Config) *domain.NetworkGraph {
	ctx, vertex := a.telemetry.Record(ctx, "download major roads")

	a.logger.Info("Adding major highways...")
	g, err := a.network.DownloadAround(ctx, cfg.Region.Center, cfg.Simple.RadiusMeters, domain.NetworkDrive)
	if err != nil {
		vertex.Log(domain.LogLevelWarn, domain.ErrorLine(err))
		vertex.Complete(nil)
		a.logger.Warn("could not load road network, the map will show cities only: " + domain.ErrorLine(err))
		return nil
	}

	major := g.FilterClasses(cfg.Simple.MajorClasses)
	a.logger.Info(fmt.Sprintf("Adding %d major road segments (%s)...",
		major.EdgeCount(), strings.Join(cfg.Simple.MajorClasses, ", ")))
	vertex.Complete(nil)
	return major
}

func (a *App) outline(ctx context.Context, cfg *domain.Config) *domain.BoundarySet {
	ctx, vertex := a.telemetry.Record(ctx, "fetch outline")

	a.logger.Info("Adding country boundary...")
	b, err := a.boundaries.FetchBoundaries(ctx, cfg.Region.Name)
	if err != nil {
		vertex.Log(domain.LogLevelWarn, domain.ErrorLine(err))
		vertex.Complete(nil)
		a.logger.Warn("could not load country boundary: " + domain.ErrorLine(err))
		return nil
	}
	vertex.Complete(nil)
	return b
}

func (a *App) render(ctx context.Context, data domain.MapData) error {
	ctx, vertex := a.telemetry.Record(ctx, "render map")

	a.logger.Info("Creating interactive map...")
	err := a.renderer.Render(ctx, data)
	vertex.Complete(err)
	return err
}

func (a *App) loadConfig(path, cacheDir string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, err
	}
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}
	return cfg, nil
}

func (a *App) openCache(opts CacheOptions) (ports.CacheStore, error) {
	cfg, err := a.loadConfig(opts.ConfigPath, opts.CacheDir)
	if err != nil {
		return nil, err
	}
	return a.cacheOpener.Open(cfg.CacheDir)
}
