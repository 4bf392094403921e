package domain

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
	"go.trai.ch/zerr"
)

// NetworkType selects which ways of the road network are downloaded.
type NetworkType string

const (
	// NetworkDrive selects drivable public roads.
	NetworkDrive NetworkType = "drive"
	// NetworkWalk selects ways usable by pedestrians.
	NetworkWalk NetworkType = "walk"
	// NetworkBike selects ways usable by cyclists.
	NetworkBike NetworkType = "bike"
	// NetworkAll selects every non-abandoned highway.
	NetworkAll NetworkType = "all"
)

// NetworkTypes returns the accepted network types.
func NetworkTypes() []NetworkType {
	return []NetworkType{NetworkDrive, NetworkWalk, NetworkBike, NetworkAll}
}

// ParseNetworkType validates s and returns the matching NetworkType.
func ParseNetworkType(s string) (NetworkType, error) {
	switch t := NetworkType(strings.ToLower(strings.TrimSpace(s))); t {
	case NetworkDrive, NetworkWalk, NetworkBike, NetworkAll:
		return t, nil
	default:
		return "", zerr.With(ErrInvalidNetworkType, "network_type", s)
	}
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// RoadNode is an intersection or dead end of the road network.
type RoadNode struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RoadEdge is a road segment between two nodes.
type RoadEdge struct {
	From         int64          `json:"from"`
	To           int64          `json:"to"`
	WayID        int64          `json:"way_id"`
	Highway      string         `json:"highway"`
	Name         string         `json:"name,omitempty"`
	LengthMeters float64        `json:"length_m"`
	Geometry     orb.LineString `json:"geometry"`
}

// NetworkGraph is the road graph of a region.
type NetworkGraph struct {
	ID           string      `json:"id"`
	Region       string      `json:"region"`
	NetworkType  NetworkType `json:"network_type"`
	Nodes        []RoadNode  `json:"nodes"`
	Edges        []RoadEdge  `json:"edges"`
	DownloadedAt time.Time   `json:"downloaded_at"`
}

// NodeCount returns the number of nodes.
func (g *NetworkGraph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges.
func (g *NetworkGraph) EdgeCount() int {
	return len(g.Edges)
}

// Center returns the mean position of all nodes.
// The second return value is false for an empty graph.
func (g *NetworkGraph) Center() (Coordinate, bool) {
	if len(g.Nodes) == 0 {
		return Coordinate{}, false
	}
	var lat, lon float64
	for _, n := range g.Nodes {
		lat += n.Lat
		lon += n.Lon
	}
	count := float64(len(g.Nodes))
	return Coordinate{Lat: lat / count, Lon: lon / count}, true
}

// FilterClasses returns a copy of the graph keeping only edges whose highway
// class contains one of the given classes (so "primary" also keeps "primary_link").
// Nodes no longer referenced by any edge are dropped.
func (g *NetworkGraph) FilterClasses(classes []string) *NetworkGraph {
	out := &NetworkGraph{
		ID:           g.ID,
		Region:       g.Region,
		NetworkType:  g.NetworkType,
		DownloadedAt: g.DownloadedAt,
	}

	used := make(map[int64]struct{})
	for _, e := range g.Edges {
		if !matchesClass(e.Highway, classes) {
			continue
		}
		out.Edges = append(out.Edges, e)
		used[e.From] = struct{}{}
		used[e.To] = struct{}{}
	}

	for _, n := range g.Nodes {
		if _, ok := used[n.ID]; ok {
			out.Nodes = append(out.Nodes, n)
		}
	}

	return out
}

func matchesClass(highway string, classes []string) bool {
	h := strings.ToLower(highway)
	for _, c := range classes {
		if c != "" && strings.Contains(h, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
