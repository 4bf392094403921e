package domain

const (
	// DefaultCacheDir is the default directory holding cached artifacts.
	DefaultCacheDir = "data_cache"

	// DefaultConfigFile is the configuration file looked up when no path is given.
	DefaultConfigFile = "bdroads.yaml"

	// DefaultMapPath is where the full analysis map is written.
	DefaultMapPath = "bangladesh_road_map.html"

	// DefaultSimpleMapPath is where the simple variant writes its map.
	DefaultSimpleMapPath = "simple_bangladesh_map.html"

	// GraphFileName is the cache file of the road network graph.
	GraphFileName = "road_graph.json.br"

	// BoundariesFileName is the cache file of the administrative boundaries.
	BoundariesFileName = "boundaries.json.br"

	// StatsFileName is the cache file of the connectivity statistics.
	StatsFileName = "connectivity_stats.json.br"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
