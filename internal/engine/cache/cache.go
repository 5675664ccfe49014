// Package cache implements the document cache: a concurrency-safe map from
// path strings to parsed documents, filled on demand by a source resolver.
package cache

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config configures a DocumentCache.
type Config struct {
	// Resolver loads documents on a miss or reload. Required.
	Resolver ports.SourceResolver
	// InitialEntries seeds the cache. Blank keys and nil documents are skipped.
	InitialEntries map[string]*domain.Document
	// Logger is optional.
	Logger ports.Logger
}

// DocumentCache maps paths to documents.
//
// Keys are used verbatim: "/a.json" and "a.json" are distinct entries even when
// they resolve to the same resource. Every method is safe for concurrent use, but
// Load is not single-flight: concurrent misses on one path may each resolve, and
// the last insert wins.
type DocumentCache struct {
	resolver ports.SourceResolver
	logger   ports.Logger

	mu      sync.RWMutex
	entries map[string]*domain.Document
}

// New creates a DocumentCache from cfg.
func New(cfg Config) (*DocumentCache, error) {
	if cfg.Resolver == nil {
		return nil, domain.ErrMissingResolver
	}

	c := &DocumentCache{
		resolver: cfg.Resolver,
		logger:   cfg.Logger,
		entries:  make(map[string]*domain.Document, len(cfg.InitialEntries)),
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}

	for path, doc := range cfg.InitialEntries {
		if domain.ValidatePath(path) != nil || doc == nil {
			c.logger.Warn(fmt.Sprintf("skipping initial cache entry %q", path))
			continue
		}
		c.entries[path] = doc
	}

	return c, nil
}

// Load returns the cached document for path, resolving and storing it on a miss.
func (c *DocumentCache) Load(ctx context.Context, path string) (*domain.Document, error) {
	return c.load(ctx, path, false)
}

// LoadAbsolute is Load with path treated as a filesystem path.
func (c *DocumentCache) LoadAbsolute(ctx context.Context, path string) (*domain.Document, error) {
	return c.load(ctx, path, true)
}

// Reload resolves path and overwrites its slot, ignoring any cached value.
func (c *DocumentCache) Reload(ctx context.Context, path string) (*domain.Document, error) {
	return c.reload(ctx, path, false)
}

// ReloadAbsolute is Reload with path treated as a filesystem path.
func (c *DocumentCache) ReloadAbsolute(ctx context.Context, path string) (*domain.Document, error) {
	return c.reload(ctx, path, true)
}

func (c *DocumentCache) load(ctx context.Context, path string, isAbsolute bool) (*domain.Document, error) {
	if err := domain.ValidatePath(path); err != nil {
		return nil, err
	}

	if doc := c.Get(path); doc != nil {
		return doc, nil
	}

	c.logger.Debug(fmt.Sprintf("cache miss for %q", path))
	return c.resolveAndStore(ctx, path, isAbsolute)
}

func (c *DocumentCache) reload(ctx context.Context, path string, isAbsolute bool) (*domain.Document, error) {
	if err := domain.ValidatePath(path); err != nil {
		return nil, err
	}

	c.logger.Debug(fmt.Sprintf("reloading %q", path))
	return c.resolveAndStore(ctx, path, isAbsolute)
}

// resolveAndStore runs the resolver without holding the lock and stores a non-nil result.
func (c *DocumentCache) resolveAndStore(ctx context.Context, path string, isAbsolute bool) (*domain.Document, error) {
	doc, err := c.resolver.Resolve(ctx, path, isAbsolute)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve document"), "path", path)
	}
	if doc == nil {
		return nil, errors.Join(domain.ErrLoadFailure, zerr.With(zerr.New("source yielded no document"), "path", path))
	}

	c.mu.Lock()
	c.entries[path] = doc
	c.mu.Unlock()

	return doc, nil
}

// Add stores doc under path and returns the previous document, if any.
// A blank path or nil document leaves the cache unchanged.
func (c *DocumentCache) Add(path string, doc *domain.Document) *domain.Document {
	if !c.acceptable(path, doc) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.entries[path]
	c.entries[path] = doc
	return prev
}

// Replace stores doc under path only if path is already cached, returning the previous document.
func (c *DocumentCache) Replace(path string, doc *domain.Document) *domain.Document {
	if !c.acceptable(path, doc) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.entries[path]
	if !ok {
		return nil
	}
	c.entries[path] = doc
	return prev
}

func (c *DocumentCache) acceptable(path string, doc *domain.Document) bool {
	if err := domain.ValidatePath(path); err != nil {
		c.logger.Warn("ignoring cache write with an empty path")
		return false
	}
	if doc == nil {
		c.logger.Warn(fmt.Sprintf("ignoring nil document for %q", path))
		return false
	}
	return true
}

// Remove deletes path and returns the removed document, if any.
func (c *DocumentCache) Remove(path string) *domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.entries[path]
	if !ok {
		return nil
	}
	delete(c.entries, path)
	return doc
}

// RemoveDocument deletes the entry whose document equals doc, as found by PathOf.
func (c *DocumentCache) RemoveDocument(doc *domain.Document) *domain.Document {
	if doc == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.pathOfLocked(doc)
	if !ok {
		return nil
	}
	removed := c.entries[path]
	delete(c.entries, path)
	return removed
}

// Clear removes every entry.
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Get returns the document cached under path, or nil.
func (c *DocumentCache) Get(path string) *domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries[path]
}

// PathOf returns a path whose document is structurally equal to doc.
//
// The lookup is a scan, not an index: several paths may hold equal documents.
// The path holding doc itself is preferred; among other equal entries the
// choice is unspecified.
func (c *DocumentCache) PathOf(doc *domain.Document) (string, bool) {
	if doc == nil {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pathOfLocked(doc)
}

func (c *DocumentCache) pathOfLocked(doc *domain.Document) (string, bool) {
	var (
		match string
		found bool
	)
	for path, cached := range c.entries {
		if cached == doc {
			return path, true
		}
		if !found && cached.Equal(doc) {
			match, found = path, true
		}
	}
	return match, found
}

// Contains reports whether path is cached.
func (c *DocumentCache) Contains(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[path]
	return ok
}

// ContainsDocument reports whether any entry is structurally equal to doc.
func (c *DocumentCache) ContainsDocument(doc *domain.Document) bool {
	_, ok := c.PathOf(doc)
	return ok
}

// Size returns the number of entries.
func (c *DocumentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// IsEmpty reports whether the cache has no entries.
func (c *DocumentCache) IsEmpty() bool {
	return c.Size() == 0
}

// Paths returns the cached paths in sorted order.
func (c *DocumentCache) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.entries))
}

// Snapshot returns a copy of the current bindings. The documents are shared, the map is not.
func (c *DocumentCache) Snapshot() map[string]*domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.entries)
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}
