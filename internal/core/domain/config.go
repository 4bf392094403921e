package domain

import (
	"time"
)

// Region describes the area being mapped.
type Region struct {
	Name   string     `yaml:"name"`
	Center Coordinate `yaml:"center"`
	Zoom   int        `yaml:"zoom"`
}

// City is a named place shown as a marker on the map.
// Cities without a location are geocoded at render time.
type City struct {
	Name     string      `yaml:"name"`
	Location *Coordinate `yaml:"location,omitempty"`
}

// RoadStyle controls how a road class is drawn.
type RoadStyle struct {
	Color   string  `yaml:"color"`
	Weight  float64 `yaml:"weight"`
	Opacity float64 `yaml:"opacity"`
}

// DefaultRoadClass is the style key used for unknown highway classes.
const DefaultRoadClass = "default"

// AnalysisConfig tunes the connectivity analysis.
type AnalysisConfig struct {
	// BetweennessThreshold is the node count above which betweenness is sampled.
	BetweennessThreshold int `yaml:"betweenness_threshold"`
	// BetweennessSample is the number of source nodes used when sampling.
	BetweennessSample int `yaml:"betweenness_sample"`
}

// SimpleConfig tunes the cache-free simple map variant.
type SimpleConfig struct {
	RadiusMeters float64  `yaml:"radius_m"`
	MajorClasses []string `yaml:"major_classes"`
	Cities       []City   `yaml:"cities"`
}

// OutputConfig holds the output paths of rendered maps.
type OutputConfig struct {
	MapPath       string `yaml:"map"`
	SimpleMapPath string `yaml:"simple_map"`
}

// Config is the resolved configuration of a run.
type Config struct {
	Region      Region               `yaml:"region"`
	NetworkType NetworkType          `yaml:"network_type"`
	Cities      []City               `yaml:"cities"`
	RoadStyles  map[string]RoadStyle `yaml:"road_styles"`
	CacheDir    string               `yaml:"cache_dir"`
	Output      OutputConfig         `yaml:"output"`
	Analysis    AnalysisConfig       `yaml:"analysis"`
	Simple      SimpleConfig         `yaml:"simple"`
	// BoundariesOptional turns a boundary provider failure into a warning.
	BoundariesOptional bool `yaml:"boundaries_optional"`
	// GeocodeConcurrency limits parallel geocoding requests.
	GeocodeConcurrency int `yaml:"geocode_concurrency"`
}

// DefaultConfig returns the built-in configuration for Bangladesh.
func DefaultConfig() *Config {
	return &Config{
		Region: Region{
			Name:   "Bangladesh",
			Center: Coordinate{Lat: 23.6850, Lon: 90.3563},
			Zoom:   7,
		},
		NetworkType: NetworkDrive,
		Cities: []City{
			{Name: "Dhaka"},
			{Name: "Chittagong"},
			{Name: "Sylhet"},
			{Name: "Rajshahi"},
			{Name: "Khulna"},
			{Name: "Barisal"},
			{Name: "Rangpur"},
			{Name: "Mymensingh"},
		},
		RoadStyles: map[string]RoadStyle{
			"motorway":        {Color: "#FF0000", Weight: 4, Opacity: 0.8},
			"trunk":           {Color: "#FF4500", Weight: 3, Opacity: 0.8},
			"primary":         {Color: "#FFA500", Weight: 2.5, Opacity: 0.7},
			"secondary":       {Color: "#FFFF00", Weight: 2, Opacity: 0.6},
			"tertiary":        {Color: "#90EE90", Weight: 1.5, Opacity: 0.5},
			"residential":     {Color: "#87CEEB", Weight: 1, Opacity: 0.4},
			DefaultRoadClass: {Color: "#808080", Weight: 1, Opacity: 0.3},
		},
		CacheDir: DefaultCacheDir,
		Output: OutputConfig{
			MapPath:       DefaultMapPath,
			SimpleMapPath: DefaultSimpleMapPath,
		},
		Analysis: AnalysisConfig{
			BetweennessThreshold: 5000,
			BetweennessSample:    1000,
		},
		Simple: SimpleConfig{
			RadiusMeters: 50000,
			MajorClasses: []string{"motorway", "trunk", "primary"},
			Cities:       DefaultSimpleCities(),
		},
		GeocodeConcurrency: 1,
	}
}

// DefaultSimpleCities returns the major cities with fixed coordinates.
func DefaultSimpleCities() []City {
	at := func(name string, lat, lon float64) City {
		return City{Name: name, Location: &Coordinate{Lat: lat, Lon: lon}}
	}
	return []City{
		at("Dhaka", 23.8103, 90.4125),
		at("Chittagong", 22.3569, 91.7832),
		at("Sylhet", 24.8949, 91.8687),
		at("Rajshahi", 24.3636, 88.6241),
		at("Khulna", 22.8456, 89.5403),
		at("Barisal", 22.7010, 90.3535),
		at("Rangpur", 25.7439, 89.2752),
		at("Mymensingh", 24.7471, 90.4203),
		at("Comilla", 23.4682, 91.1788),
		at("Narayanganj", 23.6238, 90.4990),
	}
}

// ProviderSettings configures the remote data providers.
type ProviderSettings struct {
	OverpassURL  string
	NominatimURL string
	UserAgent    string
	Timeout      time.Duration
}
