// Package cache provides the byte caches used to skip regenerating mazes and
// re-rendering artifacts.
//
// Mazes are deterministic in their inputs (size, mask, algorithm, seed), so a
// cached maze document never goes stale; only its TTL bounds its life.
// Rendered artifacts are keyed by the maze hash plus render options.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
package cache

import (
	"context"
	"strings"
	"time"
)

// Default lifetimes for cached entries.
const (
	MazeTTL     = 30 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value and true on a hit, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kind classifies a cache entry by the key segment that names it.
type Kind string

// Entry kinds written by the pipeline.
const (
	KindMaze     Kind = "maze"     // generated maze documents (JSON)
	KindArtifact Kind = "artifact" // rendered output in one format
	KindOther    Kind = "other"    // keys not minted by a [Keyer]
)

// Kinds lists the kinds a [Keyer] mints, in storage order.
func Kinds() []Kind { return []Kind{KindMaze, KindArtifact} }

// KindOf reads the kind from a key of the form [scope:]kind:hash.
func KindOf(key string) Kind {
	parts := strings.Split(key, ":")
	for i := len(parts) - 2; i >= 0; i-- {
		switch k := Kind(parts[i]); k {
		case KindMaze, KindArtifact:
			return k
		}
	}
	return KindOther
}

// NullCache stores nothing. It backs --no-cache and the "none" backend, so
// every maze is regenerated and every artifact re-rendered.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
