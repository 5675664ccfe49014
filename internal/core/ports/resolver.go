package ports

import (
	"context"

	"go.trai.ch/doccache/internal/core/domain"
)

// SourceResolver defines the interface for reading and parsing a document from its source.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve classifies path, reads it and parses the content.
	// A bundled resource that does not exist yields nil, nil.
	Resolve(ctx context.Context, path string, isAbsolute bool) (*domain.Document, error)
}
