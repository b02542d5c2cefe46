package ports

import "go.trai.ch/logshare/internal/core/domain"

// ConfigLoader defines the interface for loading the logshare configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration file from the given working directory and
	// returns the resolved settings. Defaults are returned if no file exists.
	Load(cwd string) (domain.Settings, error)
}
