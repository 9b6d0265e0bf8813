package ports

import "github.com/Prelang/prelang-buildpack/internal/core/domain"

// ConfigLoader defines the interface for loading the buildpack configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given build directory.
	Load(buildDir string) (domain.Config, error)
}

// EnvReader reads platform-provided environment variables.
type EnvReader interface {
	// Read returns the variables found in dir. A missing or empty dir yields an empty map.
	Read(dir string) (map[string]string, error)
}
