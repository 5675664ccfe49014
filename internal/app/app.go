// Package app implements the application layer for doccache.
package app

import (
	"context"
	"io/fs"
	"net/http"
	"sync"

	"go.trai.ch/doccache/internal/adapters/parser" //nolint:depguard // Wired in app layer
	"go.trai.ch/doccache/internal/adapters/source" //nolint:depguard // Wired in app layer
	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/doccache/internal/engine/cache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CacheOptions configures a cache built by NewCache. Every field is optional.
type CacheOptions struct {
	Parser         ports.Parser
	Resources      fs.FS
	HTTPClient     *http.Client
	InitialEntries map[string]*domain.Document
	Logger         ports.Logger
}

// NewCache builds an instance-scoped DocumentCache backed by a source.Resolver.
func NewCache(opts CacheOptions) (*cache.DocumentCache, error) {
	resolver := source.NewResolver(source.Config{
		Parser:     opts.Parser,
		Resources:  opts.Resources,
		HTTPClient: opts.HTTPClient,
		Logger:     opts.Logger,
	})
	return cache.New(cache.Config{
		Resolver:       resolver,
		InitialEntries: opts.InitialEntries,
		Logger:         opts.Logger,
	})
}

// LoadOptions controls a Load call.
type LoadOptions struct {
	// Absolute treats every path as a filesystem path.
	Absolute bool
	// Reload bypasses cached entries.
	Reload bool
	// Parser selects the document syntax. Empty means the configured parser.
	Parser string
}

// Result is one loaded document.
type Result struct {
	Path     string
	Document *domain.Document
}

// Report is the outcome of a Load call.
type Report struct {
	Results   []Result
	CacheSize int
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	resources    fs.FS

	mu       sync.Mutex
	settings *domain.Settings
	caches   map[string]*cache.DocumentCache
}

// New creates a new App. shared is the process-wide cache for sharedParser documents;
// caches for other parsers are created on first use.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	resources fs.FS,
	shared *cache.DocumentCache,
	sharedParser string,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		resources:    resources,
		settings:     domain.DefaultSettings(),
		caches:       map[string]*cache.DocumentCache{sharedParser: shared},
	}
}

// Configure reads the config file and preloads its documents.
func (a *App) Configure(ctx context.Context, configPath string) error {
	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if _, err := parser.ByName(settings.Parser); err != nil {
		return zerr.Wrap(err, "invalid parser in "+configPath)
	}

	a.mu.Lock()
	a.settings = settings
	a.mu.Unlock()

	if len(settings.Preload) == 0 {
		return nil
	}

	if _, err := a.Load(ctx, settings.Preload, LoadOptions{}); err != nil {
		return zerr.Wrap(err, "failed to preload documents")
	}
	return nil
}

// Load loads paths concurrently through the cache for the selected parser.
// Results keep the order of paths. The first failure cancels the remaining loads.
func (a *App) Load(ctx context.Context, paths []string, opts LoadOptions) (*Report, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	c, err := a.cacheFor(opts.Parser)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := loadOne(gctx, c, path, opts)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Document: doc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Results: results, CacheSize: c.Size()}, nil
}

func loadOne(ctx context.Context, c *cache.DocumentCache, path string, opts LoadOptions) (*domain.Document, error) {
	switch {
	case opts.Reload && opts.Absolute:
		return c.ReloadAbsolute(ctx, path)
	case opts.Reload:
		return c.Reload(ctx, path)
	case opts.Absolute:
		return c.LoadAbsolute(ctx, path)
	default:
		return c.Load(ctx, path)
	}
}

// cacheFor returns the cache for the named parser, creating an instance-scoped one if needed.
func (a *App) cacheFor(name string) (*cache.DocumentCache, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name == "" {
		name = a.settings.Parser
	}
	p, err := parser.ByName(name)
	if err != nil {
		return nil, err
	}

	if c, ok := a.caches[p.Name()]; ok {
		return c, nil
	}

	a.logger.Debug("creating document cache for " + p.Name() + " documents")
	c, err := NewCache(CacheOptions{
		Parser:    p,
		Resources: a.resources,
		Logger:    a.logger,
	})
	if err != nil {
		return nil, err
	}
	a.caches[p.Name()] = c
	return c, nil
}
