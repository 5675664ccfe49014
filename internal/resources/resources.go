// Package resources holds the documents bundled into the doccache binary.
package resources

import "embed"

// FS is the bundled resource namespace. Paths are relative to this directory;
// the source resolver maps "/config.json" to "config.json".
//
//go:embed *.json languages/*.json
var FS embed.FS
