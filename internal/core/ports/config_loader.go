package ports

import "go.trai.ch/reattach/internal/core/domain"

// ConfigLoader defines the interface for loading the suite configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file starting from cwd and returns the suite.
	Load(cwd string) (*domain.Suite, error)
	// LoadFile loads the suite from an explicit configuration file.
	LoadFile(path string) (*domain.Suite, error)
}
