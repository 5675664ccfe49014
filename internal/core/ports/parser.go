package ports

import (
	"io"

	"go.trai.ch/doccache/internal/core/domain"
)

// Parser defines the interface for decoding a byte stream into a document.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Name returns the syntax name, e.g. "json".
	Name() string
	// Parse decodes exactly one document from r.
	Parse(r io.Reader) (*domain.Document, error)
}
