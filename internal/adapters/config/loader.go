// Package config provides the configuration loader for doccache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the settings at path. A missing file yields the default settings.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no config file at " + path + ", using defaults")
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var docfile Docfile
	if err := yaml.Unmarshal(data, &docfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if v := strings.TrimSpace(docfile.Version); v != "" && v != domain.ConfigVersion {
		unsupported := zerr.With(zerr.New("expected version "+domain.ConfigVersion), "version", v)
		return nil, errors.Join(domain.ErrUnsupportedConfigVersion, zerr.With(unsupported, "path", path))
	}

	settings := domain.DefaultSettings()
	if p := strings.TrimSpace(docfile.Parser); p != "" {
		settings.Parser = strings.ToLower(p)
	}
	for _, preload := range docfile.Preload {
		if domain.ValidatePath(preload) != nil {
			l.Logger.Warn("ignoring empty preload path in " + path)
			continue
		}
		settings.Preload = append(settings.Preload, preload)
	}

	return settings, nil
}
