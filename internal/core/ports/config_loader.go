package ports

import "go.trai.ch/tsload/internal/core/domain"

// ConfigLoader defines the interface for loading loader options.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the loader configuration by walking up from cwd and returns the options it holds.
	// Defaults are returned when no configuration file exists.
	Load(cwd string) (domain.LoaderOptions, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing tsload.yaml or tsconfig.json, or cwd when neither exists.
	DiscoverRoot(cwd string) (string, error)
}
