// Package leaflet renders road networks as standalone Leaflet HTML maps.
package leaflet

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/map.html.tmpl
var templates embed.FS

const defaultTitle = "Road Network"

// Renderer implements ports.MapRenderer.
type Renderer struct {
	geocoder ports.Geocoder
	logger   ports.Logger
	tmpl     *template.Template
}

// NewRenderer creates a Renderer. Cities without a location are resolved with geocoder.
func NewRenderer(geocoder ports.Geocoder, logger ports.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/map.html.tmpl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse map template")
	}
	return &Renderer{geocoder: geocoder, logger: logger, tmpl: tmpl}, nil
}

type viewport struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Zoom          int     `json:"zoom"`
	BoundaryLabel string  `json:"boundaryLabel"`
}

type cityMarker struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type page struct {
	Title      string
	View       viewport
	Roads      []roadLayer
	Cities     []cityMarker
	Boundaries *geojson.FeatureCollection
}

// Render writes the map described by data to data.OutputPath.
func (r *Renderer) Render(ctx context.Context, data domain.MapData) error {
	if data.OutputPath == "" {
		return errors.Join(domain.ErrRenderFailed, zerr.New("output path must not be empty"))
	}

	cities, err := r.locateCities(ctx, data)
	if err != nil {
		return errors.Join(domain.ErrRenderFailed, zerr.Wrap(err, "failed to place city markers"))
	}

	p := page{
		Title:      data.Title,
		View:       viewportFor(data),
		Roads:      roadLayers(data),
		Cities:     cities,
		Boundaries: boundaryCollection(data.Boundaries),
	}
	if p.Title == "" {
		p.Title = defaultTitle
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, p); err != nil {
		return errors.Join(domain.ErrRenderFailed, zerr.Wrap(err, "failed to execute map template"))
	}

	if err := writeFileAtomic(data.OutputPath, buf.Bytes()); err != nil {
		return errors.Join(domain.ErrRenderFailed, zerr.With(err, "path", data.OutputPath))
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, fmt.Sprintf("wrote %d bytes to %s", buf.Len(), data.OutputPath))
	}
	return nil
}

func viewportFor(data domain.MapData) viewport {
	v := viewport{
		Lat:           data.Region.Center.Lat,
		Lon:           data.Region.Center.Lon,
		Zoom:          data.Region.Zoom,
		BoundaryLabel: strings.TrimSpace(data.Region.Name + " Border"),
	}
	if !data.Simple && data.Graph != nil {
		if c, ok := data.Graph.Center(); ok {
			v.Lat, v.Lon = c.Lat, c.Lon
		}
	}
	if v.Zoom == 0 {
		v.Zoom = 7
	}
	return v
}

// locateCities returns the markers in configuration order. Cities that cannot
// be geocoded are logged and left out.
func (r *Renderer) locateCities(ctx context.Context, data domain.MapData) ([]cityMarker, error) {
	located := make([]*cityMarker, len(data.Cities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, data.GeocodeConcurrency))

	for i, city := range data.Cities {
		if city.Location != nil {
			located[i] = &cityMarker{Name: city.Name, Lat: city.Location.Lat, Lon: city.Location.Lon}
			continue
		}

		g.Go(func() error {
			c, err := r.geocode(gctx, city.Name, data.Region.Name)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				r.logger.Warn(fmt.Sprintf("could not geocode %s, skipping marker: %s", city.Name, domain.ErrorLine(err)))
				return nil
			}
			located[i] = &cityMarker{Name: city.Name, Lat: c.Lat, Lon: c.Lon}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	markers := make([]cityMarker, 0, len(located))
	for _, m := range located {
		if m != nil {
			markers = append(markers, *m)
		}
	}
	return markers, nil
}

func (r *Renderer) geocode(ctx context.Context, city, region string) (domain.Coordinate, error) {
	if r.geocoder == nil {
		return domain.Coordinate{}, domain.ErrGeocodeNotFound
	}
	query := city
	if region != "" {
		query = city + ", " + region
	}
	return r.geocoder.Geocode(ctx, query)
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp output file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write output file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp output file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod output file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename output file")
	}

	return nil
}
