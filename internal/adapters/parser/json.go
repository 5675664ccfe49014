package parser

import (
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
)

// JSONName is the name of the JSON parser.
const JSONName = "json"

var _ ports.Parser = (*JSON)(nil)

// JSON parses JSON documents. Numbers keep their literal form.
type JSON struct{}

// NewJSON creates a new JSON parser.
func NewJSON() *JSON {
	return &JSON{}
}

// Name returns "json".
func (p *JSON) Name() string {
	return JSONName
}

// Parse decodes a single JSON value from r. Trailing content is rejected.
func (p *JSON) Parse(r io.Reader) (*domain.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Join(domain.ErrParseFailed, zerr.New("empty document"))
		}
		return nil, errors.Join(domain.ErrParseFailed, zerr.Wrap(err, "invalid JSON"))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrParseFailed, zerr.New("unexpected data after JSON value"))
	}

	doc, err := domain.NewDocument(root)
	if err != nil {
		return nil, errors.Join(domain.ErrParseFailed, err)
	}
	return doc, nil
}
