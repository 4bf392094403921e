package leaflet

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/paulmach/orb/geojson"
	"go.trai.ch/bdroads/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// classOrder lists the road classes from most to least important.
var classOrder = []string{"motorway", "trunk", "primary", "secondary", "tertiary", "residential"}

var titler = cases.Title(language.English)

type roadLayer struct {
	Name string                     `json:"name"`
	Data *geojson.FeatureCollection `json:"data"`
}

// roadLayers groups the graph edges into one overlay per highway class, or a
// single "Major Roads" overlay for the simple map.
func roadLayers(data domain.MapData) []roadLayer {
	if data.Graph == nil || len(data.Graph.Edges) == 0 {
		return []roadLayer{}
	}

	groups := make(map[string]*geojson.FeatureCollection)
	for _, e := range data.Graph.Edges {
		class := strings.ToLower(strings.TrimSpace(e.Highway))
		if class == "" {
			class = domain.DefaultRoadClass
		}

		key := class
		if data.Simple {
			key = "major"
		}
		fc, ok := groups[key]
		if !ok {
			fc = geojson.NewFeatureCollection()
			groups[key] = fc
		}
		fc.Append(roadFeature(e, class, styleFor(data.RoadStyles, class)))
	}

	if data.Simple {
		return []roadLayer{{Name: "Major Roads", Data: groups["major"]}}
	}

	classes := make([]string, 0, len(groups))
	for class := range groups {
		classes = append(classes, class)
	}
	slices.SortFunc(classes, func(a, b string) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	layers := make([]roadLayer, 0, len(classes))
	for _, class := range classes {
		layers = append(layers, roadLayer{Name: classLabel(class) + " Roads", Data: groups[class]})
	}
	return layers
}

func roadFeature(e domain.RoadEdge, class string, style domain.RoadStyle) *geojson.Feature {
	f := geojson.NewFeature(e.Geometry)
	name := e.Name
	if name == "" {
		name = "Unnamed"
	}
	f.Properties["type"] = class
	f.Properties["label"] = classLabel(class) + " Road"
	f.Properties["name"] = name
	f.Properties["length_m"] = math.Round(e.LengthMeters)
	f.Properties["color"] = style.Color
	f.Properties["weight"] = style.Weight
	f.Properties["opacity"] = style.Opacity
	return f
}

// styleFor resolves the style of a class. Link roads share the style of their
// parent class.
func styleFor(styles map[string]domain.RoadStyle, class string) domain.RoadStyle {
	if s, ok := styles[class]; ok {
		return s
	}
	if s, ok := styles[strings.TrimSuffix(class, "_link")]; ok {
		return s
	}
	if s, ok := styles[domain.DefaultRoadClass]; ok {
		return s
	}
	return domain.RoadStyle{Color: "#808080", Weight: 1, Opacity: 0.3}
}

func rank(class string) int {
	if i := slices.Index(classOrder, strings.TrimSuffix(class, "_link")); i >= 0 {
		return i
	}
	return len(classOrder)
}

func classLabel(class string) string {
	return titler.String(strings.ReplaceAll(class, "_", " "))
}

func boundaryCollection(set *domain.BoundarySet) *geojson.FeatureCollection {
	if set == nil || len(set.Boundaries) == 0 {
		return nil
	}

	fc := geojson.NewFeatureCollection()
	for _, b := range set.Boundaries {
		f := geojson.NewFeature(b.Geometry)
		f.ID = b.ID
		f.Properties["name"] = b.Name
		fc.Append(f)
	}
	return fc
}
