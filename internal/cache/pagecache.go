package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry captures enough response metadata to support conditional
// revalidation and to serve an album page without hitting the network.
type Entry struct {
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"last_modified"`
	SavedAt      time.Time `json:"saved_at"`
}

// PageCache stores fetched album pages on disk as <key>.meta.json and
// <key>.body where key is sha256 of the album URL. Entries are keyed by the
// target URL, not the relay URL, so switching relays keeps the cache warm.
// No eviction policy beyond the explicit age purge.
type PageCache struct {
	Dir string
}

func (c *PageCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *PageCache) key(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}

func (c *PageCache) metaPath(key string) string { return filepath.Join(c.Dir, key+".meta.json") }
func (c *PageCache) bodyPath(key string) string { return filepath.Join(c.Dir, key+".body") }

// LoadMeta returns entry metadata if present.
func (c *PageCache) LoadMeta(_ context.Context, url string) (*Entry, error) {
	if err := c.ensureDir(); err != nil {
		return nil, err
	}
	f, err := os.Open(c.metaPath(c.key(url)))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var e Entry
	if err := json.NewDecoder(f).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// LoadBody returns the cached page body if present.
func (c *PageCache) LoadBody(_ context.Context, url string) ([]byte, error) {
	if err := c.ensureDir(); err != nil {
		return nil, err
	}
	return os.ReadFile(c.bodyPath(c.key(url)))
}

// Save stores a new cache entry to disk. The body is written first so a
// crash between the two writes leaves no meta pointing at a missing body.
func (c *PageCache) Save(_ context.Context, url, contentType, etag, lastModified string, body []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	key := c.key(url)
	if err := os.WriteFile(c.bodyPath(key), body, 0o644); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	meta := Entry{
		URL:          url,
		ContentType:  contentType,
		ETag:         etag,
		LastModified: lastModified,
		SavedAt:      time.Now().UTC(),
	}
	tmp := c.metaPath(key) + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create meta: %w", err)
	}
	if err := json.NewEncoder(f).Encode(&meta); err != nil {
		f.Close()
		return fmt.Errorf("encode meta: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, c.metaPath(key))
}

// ClearDir removes the directory and all contents, then recreates it to
// leave a valid empty cache location.
func ClearDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("empty dir")
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// PurgeByAge removes entries whose SavedAt is older than maxAge, deleting
// both the meta file and the corresponding body. Unreadable or malformed
// meta files are left in place.
func PurgeByAge(dir string, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	removed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".meta.json") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var e Entry
		if err := json.Unmarshal(b, &e); err != nil {
			return nil
		}
		if now.Sub(e.SavedAt) <= maxAge {
			return nil
		}
		removed++
		_ = os.Remove(path)
		_ = os.Remove(strings.TrimSuffix(path, ".meta.json") + ".body")
		return nil
	})
	return removed, err
}
