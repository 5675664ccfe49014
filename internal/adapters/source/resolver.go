// Package source implements the SourceResolver port for bundled resources,
// absolute files and remote URLs.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.trai.ch/doccache/internal/adapters/parser"
	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Config configures a Resolver. Every field is optional.
type Config struct {
	// Parser decodes source content. Defaults to JSON.
	Parser ports.Parser
	// Resources is the bundled resource namespace. When nil every bundled path is missing.
	Resources fs.FS
	// HTTPClient fetches remote URLs. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Logger receives a debug line per resolution.
	Logger ports.Logger
}

// Resolver reads and parses documents. It holds no per-call state.
type Resolver struct {
	parser     ports.Parser
	resources  fs.FS
	httpClient *http.Client
	logger     ports.Logger
}

// NewResolver creates a Resolver, filling unset fields of cfg with defaults.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		parser:     cfg.Parser,
		resources:  cfg.Resources,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if r.parser == nil {
		r.parser = parser.NewJSON()
	}
	if r.httpClient == nil {
		r.httpClient = http.DefaultClient
	}
	if r.logger == nil {
		r.logger = nopLogger{}
	}
	return r
}

// Classify derives the source kind of path. The absolute flag wins over the URL prefix check.
func Classify(path string, isAbsolute bool) domain.SourceKind {
	if isAbsolute {
		return domain.AbsoluteFile
	}
	for _, prefix := range domain.URLSchemePrefixes {
		if strings.HasPrefix(path, prefix) {
			return domain.RemoteURL
		}
	}
	return domain.BundledResource
}

// Resolve reads the document at path. A missing bundled resource yields nil, nil.
func (r *Resolver) Resolve(ctx context.Context, path string, isAbsolute bool) (*domain.Document, error) {
	if err := domain.ValidatePath(path); err != nil {
		return nil, err
	}

	kind := Classify(path, isAbsolute)
	r.logger.Debug(fmt.Sprintf("resolving %s %q with %s parser", kind, path, r.parser.Name()))

	switch kind {
	case domain.AbsoluteFile:
		return r.resolveFile(path)
	case domain.RemoteURL:
		return r.resolveURL(ctx, path)
	default:
		return r.resolveResource(path)
	}
}

func (r *Resolver) resolveFile(path string) (*domain.Document, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by the caller
	if err != nil {
		sourceErr := zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrNotFound, sourceErr)
		}
		return nil, errors.Join(domain.ErrIO, sourceErr)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	return r.parse(f, path)
}

func (r *Resolver) resolveURL(ctx context.Context, rawURL string) (*domain.Document, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Host == "" {
		if err == nil {
			err = zerr.New("missing host")
		}
		return nil, errors.Join(domain.ErrInvalidArgument, zerr.With(zerr.Wrap(err, "malformed URL"), "path", rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidArgument, zerr.With(zerr.Wrap(err, "failed to build request"), "path", rawURL))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "request failed"), "path", rawURL))
	}
	defer resp.Body.Close() //nolint:errcheck // Body is fully consumed or abandoned

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Join(domain.ErrNotFound, zerr.With(zerr.New("remote document not found"), "path", rawURL))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := zerr.With(zerr.New("unexpected response status"), "status_code", resp.StatusCode)
		return nil, errors.Join(domain.ErrIO, zerr.With(statusErr, "path", rawURL))
	}

	return r.parse(resp.Body, rawURL)
}

func (r *Resolver) resolveResource(path string) (*domain.Document, error) {
	if r.resources == nil {
		return nil, nil
	}

	// Names fs.FS cannot address, such as "a/../b", are reported as missing.
	name := resourceName(path)
	if !fs.ValidPath(name) {
		return nil, nil
	}

	f, err := r.resources.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to open resource"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Read-only resource

	return r.parse(f, path)
}

// resourceName maps a resource path to an fs.FS name. A leading slash denotes the namespace root;
// paths without one are resolved against the same root.
func resourceName(path string) string {
	name := strings.TrimLeft(path, "/")
	if name == "" {
		return "."
	}
	return name
}

func (r *Resolver) parse(rd io.Reader, path string) (*domain.Document, error) {
	doc, err := r.parser.Parse(rd)
	if err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to parse "+r.parser.Name()+" document"), "path", path))
	}
	return doc, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}
