package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache is the CLI's local cache. Each entry is one JSON file, filed
// under the kind of its key:
//
//	<dir>/maze/3f/a9c1....json      generated maze documents
//	<dir>/artifact/07/be42....json  rendered SVG, PNG, ASCII and so on
//	<dir>/other/...                 anything else
//
// Entries keep their full key, so a file is only served for the key that
// wrote it. Writes go through a temporary file and a rename, which keeps
// concurrent mazegen runs from reading half-written entries.
type FileCache struct {
	dir string
}

// NewFileCache opens (and creates) a cache rooted at dir.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

type fileEntry struct {
	Key       string    `json:"key"`
	Kind      Kind      `json:"kind"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	Data      []byte    `json:"data"`
}

// Usage summarises the entries of one kind.
type Usage struct {
	Entries int
	Bytes   int64
}

// Get returns the entry for key. Unreadable, expired or foreign entries are
// removed and reported as a miss.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.Key != key {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes data under key; ttl <= 0 keeps it until cleared.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	now := time.Now()
	e := fileEntry{Key: key, Kind: KindOf(key), StoredAt: now, Data: data}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key; a missing entry is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Usage counts entries and their size on disk per kind. Kinds without
// entries are omitted.
func (c *FileCache) Usage() (map[Kind]Usage, error) {
	out := make(map[Kind]Usage)
	for _, k := range append(Kinds(), KindOther) {
		err := filepath.WalkDir(filepath.Join(c.dir, string(k)), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fs.SkipAll
				}
				return err
			}
			if d.IsDir() || !isEntryFile(d.Name()) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			u := out[k]
			u.Entries++
			u.Bytes += info.Size()
			out[k] = u
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Clear removes every entry of the given kinds, or of all kinds when none
// are given, and returns how many entries were removed.
func (c *FileCache) Clear(kinds ...Kind) (int, error) {
	if len(kinds) == 0 {
		kinds = append(Kinds(), KindOther)
	}
	usage, err := c.Usage()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, k := range kinds {
		if err := os.RemoveAll(filepath.Join(c.dir, string(k))); err != nil {
			return removed, err
		}
		removed += usage[k].Entries
	}
	return removed, nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// path maps key to <dir>/<kind>/<h[:2]>/<h[2:]>.json.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, string(KindOf(key)), h[:2], h[2:]+".json")
}

func isEntryFile(name string) bool {
	return strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, ".tmp-")
}

var _ Cache = (*FileCache)(nil)
