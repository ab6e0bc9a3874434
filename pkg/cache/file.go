package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache implements a file-based artifact cache for CLI usage.
// Rendered swatches are binary and can be large, so payloads are stored as
// raw files with a small JSON metadata sidecar holding the expiration,
// rather than base64-inflating them into a JSON envelope.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entryMeta is the sidecar metadata stored next to each payload.
type entryMeta struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves an artifact from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, meta := c.paths(key)

	raw, err := os.ReadFile(meta)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m entryMeta
	if err := json.Unmarshal(raw, &m); err != nil {
		// Corrupt metadata - treat as miss
		c.remove(key)
		return nil, false, nil
	}
	if !m.ExpiresAt.IsZero() && time.Now().After(m.ExpiresAt) {
		c.remove(key)
		return nil, false, nil
	}

	data, err := os.ReadFile(payload)
	if os.IsNotExist(err) {
		// Metadata without payload - treat as miss
		c.remove(key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores an artifact with an optional TTL.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	payload, meta := c.paths(key)

	if err := os.MkdirAll(filepath.Dir(payload), 0755); err != nil {
		return err
	}

	var m entryMeta
	if ttl > 0 {
		m.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(payload, data, 0644); err != nil {
		return err
	}
	return os.WriteFile(meta, raw, 0644)
}

// Delete removes an artifact from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.remove(key)
	return nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// remove deletes both payload and sidecar, ignoring missing files.
func (c *FileCache) remove(key string) {
	payload, meta := c.paths(key)
	_ = os.Remove(payload)
	_ = os.Remove(meta)
}

// paths converts a cache key to its payload and metadata file paths.
// The first two hash characters form a subdirectory so no single directory
// accumulates too many files.
func (c *FileCache) paths(key string) (payload, meta string) {
	hash := Hash([]byte(key))
	dir := filepath.Join(c.dir, hash[:2])
	return filepath.Join(dir, hash[2:]+".bin"), filepath.Join(dir, hash[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
