package domain

import (
	"bytes"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Document is an immutable parsed tree.
//
// Two documents are structurally equal when their canonical JSON encodings
// match, regardless of key order or the syntax they were parsed from. The
// encoding follows RFC 8785 except that numbers keep their exact decimal value,
// so integers beyond 2^53 stay distinct. The fingerprint is the xxhash of that
// encoding and is only a fast pre-check.
type Document struct {
	root        any
	canonical   []byte
	fingerprint uint64
}

// NewDocument wraps a decoded tree. The tree must not be modified afterwards.
func NewDocument(root any) (*Document, error) {
	var buf bytes.Buffer
	if err := canonicalize(&buf, root); err != nil {
		return nil, err
	}
	canonical := buf.Bytes()

	return &Document{
		root:        root,
		canonical:   canonical,
		fingerprint: xxhash.Sum64(canonical),
	}, nil
}

// Root returns the decoded tree. Callers share it with the cache and must treat it as read-only.
func (d *Document) Root() any {
	return d.root
}

// Canonical returns a copy of the canonical JSON encoding.
func (d *Document) Canonical() []byte {
	return bytes.Clone(d.canonical)
}

// Fingerprint returns the xxhash of the canonical encoding.
func (d *Document) Fingerprint() uint64 {
	return d.fingerprint
}

// Equal reports whether d and other are structurally equal.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d == other {
		return true
	}
	return d.fingerprint == other.fingerprint && bytes.Equal(d.canonical, other.canonical)
}

// String returns the canonical encoding.
func (d *Document) String() string {
	if d == nil {
		return "<nil>"
	}
	return string(d.canonical)
}

// GoString is used by %#v and in test failure output.
func (d *Document) GoString() string {
	if d == nil {
		return "(*domain.Document)(nil)"
	}
	return "domain.Document(" + strconv.Quote(string(d.canonical)) + ")"
}
