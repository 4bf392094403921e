// Package cache implements the on-disk artifact cache.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
)

const tempSuffix = ".tmp-*"

// Store implements ports.CacheStore using one compressed file per artifact.
type Store struct {
	dir string
	now func() time.Time
}

// Opener implements ports.CacheOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open creates dir if needed and returns a store rooted there.
func (o *Opener) Open(dir string) (ports.CacheStore, error) {
	return NewStore(dir)
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = domain.DefaultCacheDir
	}
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrCacheCreateFailed, zerr.With(err, "dir", dir))
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) path(kind domain.ArtifactKind) string {
	return filepath.Join(s.dir, kind.FileName())
}

// Has reports whether the artifact file exists.
func (s *Store) Has(kind domain.ArtifactKind) bool {
	info, err := os.Stat(s.path(kind))
	return err == nil && info.Mode().IsRegular()
}

// LoadGraph reads the cached road network graph.
func (s *Store) LoadGraph() (*domain.NetworkGraph, error) {
	var g domain.NetworkGraph
	if err := s.load(domain.ArtifactGraph, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// LoadBoundaries reads the cached boundary set.
func (s *Store) LoadBoundaries() (*domain.BoundarySet, error) {
	var b domain.BoundarySet
	if err := s.load(domain.ArtifactBoundaries, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadStats reads the cached connectivity statistics.
func (s *Store) LoadStats() (*domain.StatsSnapshot, error) {
	var st domain.StatsSnapshot
	if err := s.load(domain.ArtifactStats, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveGraph persists the road network graph.
func (s *Store) SaveGraph(g *domain.NetworkGraph) error {
	if g == nil {
		return s.persistError(domain.ArtifactGraph, zerr.New("nil artifact"))
	}
	c := *g
	c.DownloadedAt = g.DownloadedAt.UTC()
	return s.save(domain.ArtifactGraph, &c)
}

// SaveBoundaries persists the boundary set.
func (s *Store) SaveBoundaries(b *domain.BoundarySet) error {
	if b == nil {
		return s.persistError(domain.ArtifactBoundaries, zerr.New("nil artifact"))
	}
	c := *b
	c.Source.FetchedAt = b.Source.FetchedAt.UTC()
	return s.save(domain.ArtifactBoundaries, &c)
}

// SaveStats persists the connectivity statistics.
func (s *Store) SaveStats(st *domain.StatsSnapshot) error {
	if st == nil {
		return s.persistError(domain.ArtifactStats, zerr.New("nil artifact"))
	}
	c := *st
	c.ComputedAt = st.ComputedAt.UTC()
	return s.save(domain.ArtifactStats, &c)
}

func (s *Store) load(kind domain.ArtifactKind, out any) error {
	p := s.path(kind)

	//nolint:gosec // Path is built from the cache directory and a fixed file name
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Join(domain.ErrCacheMiss, zerr.Wrap(err, "artifact not cached"))
		}
		return errors.Join(domain.ErrCacheCorrupt, zerr.With(zerr.Wrap(err, "failed to read artifact"), "path", p))
	}

	if err := decode(kind, data, out); err != nil {
		return errors.Join(domain.ErrCacheCorrupt, zerr.With(err, "path", p))
	}

	return nil
}

func (s *Store) save(kind domain.ArtifactKind, v any) error {
	data, err := encode(kind, v, s.now())
	if err != nil {
		return s.persistError(kind, err)
	}

	if err := s.atomicWriteFile(kind, data); err != nil {
		return s.persistError(kind, err)
	}

	return nil
}

func (s *Store) persistError(kind domain.ArtifactKind, err error) error {
	return errors.Join(domain.ErrPersist, zerr.With(zerr.With(err, "kind", string(kind)), "path", s.path(kind)))
}

// atomicWriteFile writes data next to the target and renames it into place,
// so readers never observe a partially written artifact.
func (s *Store) atomicWriteFile(kind domain.ArtifactKind, data []byte) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(s.dir, kind.FileName()+tempSuffix)
	if err != nil {
		return zerr.Wrap(err, "failed to create temp artifact file")
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
		return zerr.Wrap(err, "failed to write artifact file")
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to sync artifact file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp artifact file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod artifact file")
	}

	if err := os.Rename(tmpName, s.path(kind)); err != nil {
		return zerr.Wrap(err, "failed to rename artifact file")
	}

	return nil
}

// Clear removes the given artifacts and any leftover temp files, or every
// artifact when no kinds are given.
func (s *Store) Clear(kinds ...domain.ArtifactKind) error {
	if len(kinds) == 0 {
		kinds = domain.AllArtifactKinds()
	}

	var errs error
	for _, kind := range kinds {
		if !kind.Valid() {
			errs = errors.Join(errs, zerr.With(domain.ErrInvalidArtifactKind, "kind", string(kind)))
			continue
		}

		targets := []string{s.path(kind)}
		if leftovers, err := filepath.Glob(filepath.Join(s.dir, kind.FileName()+tempSuffix)); err == nil {
			targets = append(targets, leftovers...)
		}

		for _, p := range targets {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = errors.Join(errs, domain.ErrCacheClearFailed, zerr.With(err, "path", p))
			}
		}
	}

	return errs
}

// Describe reports the state of every artifact slot without reading contents.
func (s *Store) Describe() ([]domain.CacheEntryInfo, error) {
	kinds := domain.AllArtifactKinds()
	entries := make([]domain.CacheEntryInfo, 0, len(kinds))

	for _, kind := range kinds {
		entry := domain.CacheEntryInfo{Kind: kind, Path: s.path(kind)}

		info, err := os.Stat(entry.Path)
		switch {
		case err == nil:
			entry.Present = info.Mode().IsRegular()
			entry.SizeBytes = info.Size()
			entry.LastModified = info.ModTime()
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, errors.Join(domain.ErrCacheStatFailed, zerr.With(err, "path", entry.Path))
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
