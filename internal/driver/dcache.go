package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsxform/internal/moduleimports"
)

// Increment when Payload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores rendered output keyed by plan digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is one cached rendering.
type Payload struct {
	Schema   uint16
	Name     string
	Output   []byte
	Inserted int
	Entries  []CachedEntry
}

type CachedEntry struct {
	Kind     uint8
	Source   string
	Imported []string
	Local    []string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it when missing.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "plans", key.String()+".mp")
}

// Put writes payload atomically.
func (c *DiskCache) Put(key Digest, payload *Payload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = fmt.Errorf("failed to remove temp file: %w", rmErr)
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key. A payload written by another schema
// version counts as a miss.
func (c *DiskCache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached payload.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func entriesToCache(entries []moduleimports.Entry) []CachedEntry {
	out := make([]CachedEntry, len(entries))
	for i, e := range entries {
		ce := CachedEntry{
			Kind:     uint8(e.Kind),
			Source:   e.Source,
			Imported: make([]string, len(e.Specifiers)),
			Local:    make([]string, len(e.Specifiers)),
		}
		for j, s := range e.Specifiers {
			ce.Imported[j] = s.Imported
			ce.Local[j] = s.Local
		}
		out[i] = ce
	}
	return out
}

// Symbols are not cached; restored specifiers carry no identity.
func entriesFromCache(cached []CachedEntry) []moduleimports.Entry {
	out := make([]moduleimports.Entry, len(cached))
	for i, ce := range cached {
		e := moduleimports.Entry{
			Kind:       moduleimports.ImportKind(ce.Kind),
			Source:     ce.Source,
			Specifiers: make([]moduleimports.Specifier, len(ce.Imported)),
		}
		for j := range ce.Imported {
			local := ""
			if j < len(ce.Local) {
				local = ce.Local[j]
			}
			e.Specifiers[j] = moduleimports.Specifier{Imported: ce.Imported[j], Local: local}
		}
		out[i] = e
	}
	return out
}
