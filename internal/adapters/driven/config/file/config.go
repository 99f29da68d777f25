// Package file loads pipeline configuration from a TOML file into the
// explicit config struct the services consume. Nothing is read from
// environment variables.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// DefaultConfigName is the config file looked for in the working
// directory when no --config flag is given.
const DefaultConfigName = "surveyctl.toml"

// Ensure Loader implements the interface.
var _ driven.ConfigLoader = (*Loader)(nil)

// Loader reads TOML configuration, overlaying it on the defaults.
type Loader struct{}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the config file at path. With an empty path the
// conventional surveyctl.toml is used when present; its absence is not
// an error and yields the defaults. An explicit path must exist.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("no %s found, using defaults", DefaultConfigName)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	logger.Debug("loaded config from %s", path)
	return cfg, nil
}
