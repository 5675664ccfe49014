package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind identifies where a document is read from. It is derived from the
// path on every load and never stored.
type SourceKind uint8

const (
	// BundledResource is a path inside the application's embedded resource namespace.
	BundledResource SourceKind = iota
	// AbsoluteFile is a filesystem path, selected only by the explicit absolute flag.
	AbsoluteFile
	// RemoteURL is an http:// or https:// location.
	RemoteURL
)

// URLSchemePrefixes are the prefixes that classify a path as a remote URL.
var URLSchemePrefixes = []string{"http://", "https://"}

func (k SourceKind) String() string {
	switch k {
	case BundledResource:
		return "resource"
	case AbsoluteFile:
		return "file"
	case RemoteURL:
		return "url"
	default:
		return fmt.Sprintf("SourceKind(%d)", uint8(k))
	}
}

// ValidatePath rejects empty and all-whitespace paths.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.Join(ErrInvalidArgument, zerr.With(zerr.New("path is empty"), "path", path))
	}
	return nil
}
