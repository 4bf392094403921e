package config

import (
	"gopkg.in/yaml.v3"
)

// Configfile represents the structure of the bdroads.yaml configuration file.
// Every field is optional; unset fields keep their built-in defaults.
type Configfile struct {
	Version     string                  `yaml:"version"`
	Region      *RegionDTO              `yaml:"region"`
	NetworkType *string                 `yaml:"network_type"`
	Cities      []CityDTO               `yaml:"cities"`
	RoadStyles  map[string]RoadStyleDTO `yaml:"road_styles"`
	CacheDir    *string                 `yaml:"cache_dir"`
	Output      *OutputDTO              `yaml:"output"`
	Analysis    *AnalysisDTO            `yaml:"analysis"`
	Simple      *SimpleDTO              `yaml:"simple"`
	Boundaries  *BoundariesDTO          `yaml:"boundaries"`
	Geocode     *GeocodeDTO             `yaml:"geocode"`
}

// RegionDTO represents the mapped region.
type RegionDTO struct {
	Name *string  `yaml:"name"`
	Lat  *float64 `yaml:"lat"`
	Lon  *float64 `yaml:"lon"`
	Zoom *int     `yaml:"zoom"`
}

// CityDTO is either a bare name or a mapping with a fixed location.
type CityDTO struct {
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat"`
	Lon  *float64 `yaml:"lon"`
}

// UnmarshalYAML accepts both "Dhaka" and {name: Dhaka, lat: 23.8, lon: 90.4}.
func (c *CityDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Name = node.Value
		return nil
	}

	type plain CityDTO
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = CityDTO(p)
	return nil
}

// RoadStyleDTO represents the drawing style of a road class.
type RoadStyleDTO struct {
	Color   string  `yaml:"color"`
	Weight  float64 `yaml:"weight"`
	Opacity float64 `yaml:"opacity"`
}

// OutputDTO represents output file locations.
type OutputDTO struct {
	Map       *string `yaml:"map"`
	SimpleMap *string `yaml:"simple_map"`
}

// AnalysisDTO represents connectivity analysis tuning.
type AnalysisDTO struct {
	BetweennessThreshold *int `yaml:"betweenness_threshold"`
	BetweennessSample    *int `yaml:"betweenness_sample"`
}

// SimpleDTO represents the simple map variant.
type SimpleDTO struct {
	RadiusMeters *float64  `yaml:"radius_m"`
	MajorClasses []string  `yaml:"major_classes"`
	Cities       []CityDTO `yaml:"cities"`
}

// BoundariesDTO represents boundary handling.
type BoundariesDTO struct {
	Optional *bool `yaml:"optional"`
}

// GeocodeDTO represents geocoding behaviour.
type GeocodeDTO struct {
	Concurrency *int `yaml:"concurrency"`
}
