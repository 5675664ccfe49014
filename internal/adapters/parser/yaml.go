package parser

import (
	"errors"
	"io"

	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// YAMLName is the name of the YAML parser.
const YAMLName = "yaml"

var _ ports.Parser = (*YAML)(nil)

// YAML parses the first document of a YAML stream.
// Mappings with non-string keys cannot be represented as JSON and are rejected.
type YAML struct{}

// NewYAML creates a new YAML parser.
func NewYAML() *YAML {
	return &YAML{}
}

// Name returns "yaml".
func (p *YAML) Name() string {
	return YAMLName
}

// Parse decodes the first YAML document from r.
func (p *YAML) Parse(r io.Reader) (*domain.Document, error) {
	var root any
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Join(domain.ErrParseFailed, zerr.New("empty document"))
		}
		return nil, errors.Join(domain.ErrParseFailed, zerr.Wrap(err, "invalid YAML"))
	}

	doc, err := domain.NewDocument(root)
	if err != nil {
		return nil, errors.Join(domain.ErrParseFailed, err)
	}
	return doc, nil
}
