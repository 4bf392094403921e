// Package config provides the configuration loader for bdroads.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration file version understood by the loader.
const SupportedVersion = "1"

var hexColorRegex = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path and overlays it onto the defaults.
// An empty path looks for bdroads.yaml in the working directory and falls
// back to the defaults when it does not exist.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigFile
	}

	cfg := domain.DefaultConfig()

	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Join(domain.ErrConfig, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path))
	}

	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfig, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path))
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return nil, errors.Join(domain.ErrConfig, zerr.With(zerr.New("unsupported config version"), "version", file.Version))
	}

	if err := l.apply(cfg, &file); err != nil {
		return nil, errors.Join(domain.ErrConfig, zerr.With(err, "path", path))
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Join(domain.ErrConfig, zerr.With(err, "path", path))
	}

	return cfg, nil
}

//nolint:cyclop // flat overlay of optional sections
func (l *Loader) apply(cfg *domain.Config, f *Configfile) error {
	if r := f.Region; r != nil {
		if r.Name != nil {
			cfg.Region.Name = strings.TrimSpace(*r.Name)
		}
		if r.Lat != nil {
			cfg.Region.Center.Lat = *r.Lat
		}
		if r.Lon != nil {
			cfg.Region.Center.Lon = *r.Lon
		}
		if r.Zoom != nil {
			cfg.Region.Zoom = *r.Zoom
		}
	}

	if f.NetworkType != nil {
		nt, err := domain.ParseNetworkType(*f.NetworkType)
		if err != nil {
			return err
		}
		cfg.NetworkType = nt
	}

	if f.Cities != nil {
		cities, err := l.toCities(f.Cities)
		if err != nil {
			return err
		}
		cfg.Cities = cities
	}

	for class, s := range f.RoadStyles {
		cfg.RoadStyles[strings.ToLower(class)] = domain.RoadStyle{
			Color:   s.Color,
			Weight:  s.Weight,
			Opacity: s.Opacity,
		}
	}

	if f.CacheDir != nil {
		cfg.CacheDir = *f.CacheDir
	}

	if o := f.Output; o != nil {
		if o.Map != nil {
			cfg.Output.MapPath = *o.Map
		}
		if o.SimpleMap != nil {
			cfg.Output.SimpleMapPath = *o.SimpleMap
		}
	}

	if a := f.Analysis; a != nil {
		if a.BetweennessThreshold != nil {
			cfg.Analysis.BetweennessThreshold = *a.BetweennessThreshold
		}
		if a.BetweennessSample != nil {
			cfg.Analysis.BetweennessSample = *a.BetweennessSample
		}
	}

	if s := f.Simple; s != nil {
		if s.RadiusMeters != nil {
			cfg.Simple.RadiusMeters = *s.RadiusMeters
		}
		if s.MajorClasses != nil {
			cfg.Simple.MajorClasses = s.MajorClasses
		}
		if s.Cities != nil {
			cities, err := l.toCities(s.Cities)
			if err != nil {
				return err
			}
			cfg.Simple.Cities = cities
		}
	}

	if b := f.Boundaries; b != nil && b.Optional != nil {
		cfg.BoundariesOptional = *b.Optional
	}

	if g := f.Geocode; g != nil && g.Concurrency != nil {
		cfg.GeocodeConcurrency = *g.Concurrency
	}

	return nil
}

func (l *Loader) toCities(dtos []CityDTO) ([]domain.City, error) {
	seen := make(map[string]struct{}, len(dtos))
	cities := make([]domain.City, 0, len(dtos))

	for _, dto := range dtos {
		name := strings.TrimSpace(dto.Name)
		if name == "" {
			return nil, zerr.New("city name must not be empty")
		}
		if _, ok := seen[strings.ToLower(name)]; ok {
			l.Logger.Warn(fmt.Sprintf("duplicate city %q in config, ignoring", name))
			continue
		}
		seen[strings.ToLower(name)] = struct{}{}

		city := domain.City{Name: name}
		switch {
		case dto.Lat != nil && dto.Lon != nil:
			city.Location = &domain.Coordinate{Lat: *dto.Lat, Lon: *dto.Lon}
		case dto.Lat != nil || dto.Lon != nil:
			return nil, zerr.With(zerr.New("city location needs both lat and lon"), "city", name)
		}
		cities = append(cities, city)
	}

	return cities, nil
}

//nolint:cyclop // one check per field
func validate(cfg *domain.Config) error {
	var errs error
	fail := func(msg, key string, val any) {
		errs = errors.Join(errs, zerr.With(zerr.New(msg), key, val))
	}

	if cfg.Region.Name == "" {
		fail("region name must not be empty", "region", cfg.Region.Name)
	}
	if !validCoordinate(cfg.Region.Center) {
		fail("region center is out of range", "center", fmt.Sprintf("%g,%g", cfg.Region.Center.Lat, cfg.Region.Center.Lon))
	}
	if cfg.Region.Zoom < 1 || cfg.Region.Zoom > 19 {
		fail("zoom must be between 1 and 19", "zoom", cfg.Region.Zoom)
	}
	for _, c := range append(append([]domain.City{}, cfg.Cities...), cfg.Simple.Cities...) {
		if c.Location != nil && !validCoordinate(*c.Location) {
			fail("city location is out of range", "city", c.Name)
		}
	}
	for class, s := range cfg.RoadStyles {
		if !hexColorRegex.MatchString(s.Color) {
			fail("road style color must be #RRGGBB", "class", class)
		}
		if s.Weight <= 0 {
			fail("road style weight must be positive", "class", class)
		}
		if s.Opacity < 0 || s.Opacity > 1 {
			fail("road style opacity must be between 0 and 1", "class", class)
		}
	}
	if _, ok := cfg.RoadStyles[domain.DefaultRoadClass]; !ok {
		fail("road styles must define a default class", "class", domain.DefaultRoadClass)
	}
	if cfg.CacheDir == "" {
		fail("cache_dir must not be empty", "cache_dir", cfg.CacheDir)
	}
	if cfg.Output.MapPath == "" || cfg.Output.SimpleMapPath == "" {
		fail("output paths must not be empty", "output", cfg.Output.MapPath)
	}
	if cfg.Analysis.BetweennessThreshold < 0 {
		fail("betweenness_threshold must not be negative", "value", cfg.Analysis.BetweennessThreshold)
	}
	if cfg.Analysis.BetweennessSample < 1 {
		fail("betweenness_sample must be at least 1", "value", cfg.Analysis.BetweennessSample)
	}
	if cfg.Simple.RadiusMeters <= 0 {
		fail("simple radius must be positive", "radius_m", cfg.Simple.RadiusMeters)
	}
	if len(cfg.Simple.MajorClasses) == 0 {
		fail("simple major_classes must not be empty", "major_classes", len(cfg.Simple.MajorClasses))
	}
	if cfg.GeocodeConcurrency < 1 {
		fail("geocode concurrency must be at least 1", "concurrency", cfg.GeocodeConcurrency)
	}

	return errs
}

func validCoordinate(c domain.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
