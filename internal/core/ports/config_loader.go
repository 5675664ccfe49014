package ports

import "go.trai.ch/doccache/internal/core/domain"

// ConfigLoader defines the interface for loading the CLI configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings at path. A missing file yields the default settings.
	Load(path string) (*domain.Settings, error)
}
