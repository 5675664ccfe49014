package parser_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/doccache/internal/adapters/parser"
	"go.trai.ch/doccache/internal/core/domain"
)

func TestJSON_Parse(t *testing.T) {
	doc, err := parser.NewJSON().Parse(strings.NewReader(`{"b": [1, 2.50, "x"], "a": {"c": null}}`))
	require.NoError(t, err)

	assert.Equal(t, `{"a":{"c":null},"b":[1,2.5,"x"]}`, doc.String())

	root, ok := doc.Root().(map[string]any)
	require.True(t, ok)
	b, ok := root["b"].([]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("2.50"), b[1], "numbers keep their literal form")
}

func TestJSON_Parse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "  \n"},
		{name: "truncated", input: `{"a":`},
		{name: "trailing data", input: `{"a":1} {"b":2}`},
		{name: "garbage", input: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.NewJSON().Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, domain.ErrParseFailed)
			assert.Nil(t, doc)
		})
	}
}

func TestJSON_Parse_NumbersOutsideFloat64(t *testing.T) {
	doc, err := parser.NewJSON().Parse(strings.NewReader(`{"id":12345678901234567891,"big":1e400}`))
	require.NoError(t, err)
	assert.Equal(t, `{"big":1e+400,"id":12345678901234567891}`, doc.String())

	other, err := parser.NewJSON().Parse(strings.NewReader(`{"id":12345678901234567890,"big":1e400}`))
	require.NoError(t, err)
	assert.False(t, doc.Equal(other))
}

func TestYAML_Parse_LargeIntegerMatchesJSON(t *testing.T) {
	fromJSON, err := parser.NewJSON().Parse(strings.NewReader(`{"id":12345678901234567890}`))
	require.NoError(t, err)
	fromYAML, err := parser.NewYAML().Parse(strings.NewReader("id: 12345678901234567890\n"))
	require.NoError(t, err)

	assert.True(t, fromJSON.Equal(fromYAML))
}

func TestJSON_Parse_Scalar(t *testing.T) {
	doc, err := parser.NewJSON().Parse(strings.NewReader(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, doc.String())
}

func TestYAML_Parse(t *testing.T) {
	input := `
name: doccache
sources:
  - resource
  - file
nested:
  enabled: true
`
	doc, err := parser.NewYAML().Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := map[string]any{
		"name":    "doccache",
		"sources": []any{"resource", "file"},
		"nested":  map[string]any{"enabled": true},
	}
	if diff := cmp.Diff(want, doc.Root()); diff != "" {
		t.Errorf("unexpected root (-want +got):\n%s", diff)
	}
}

func TestYAML_Parse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unclosed sequence", input: "a: [1, 2\n"},
		{name: "non-string keys", input: "1: one\n2: two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.NewYAML().Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, domain.ErrParseFailed)
			assert.Nil(t, doc)
		})
	}
}

func TestParsers_ProduceEqualDocuments(t *testing.T) {
	fromJSON, err := parser.NewJSON().Parse(strings.NewReader(`{"a": 1, "b": ["x", true]}`))
	require.NoError(t, err)

	fromYAML, err := parser.NewYAML().Parse(strings.NewReader("b: [x, true]\na: 1\n"))
	require.NoError(t, err)

	assert.True(t, fromJSON.Equal(fromYAML))
	assert.Equal(t, fromJSON.Fingerprint(), fromYAML.Fingerprint())
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: parser.JSONName},
		{name: "json", want: parser.JSONName},
		{name: "JSON", want: parser.JSONName},
		{name: "yaml", want: parser.YAMLName},
		{name: "yml", want: parser.YAMLName},
		{name: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parser.ByName(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArgument)
				require.ErrorIs(t, err, domain.ErrUnknownParser)
				assert.Contains(t, err.Error(), "parser not supported")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}
