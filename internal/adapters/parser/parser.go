// Package parser implements the document parsers.
package parser

import (
	"errors"
	"strings"

	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
)

// ByName returns the parser registered under name. Matching is case-insensitive.
func ByName(name string) (ports.Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", JSONName:
		return NewJSON(), nil
	case YAMLName, "yml":
		return NewYAML(), nil
	default:
		return nil, errors.Join(
			domain.ErrInvalidArgument,
			domain.ErrUnknownParser,
			zerr.With(zerr.New("parser not supported"), "parser", name),
		)
	}
}
