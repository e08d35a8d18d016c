package config

import (
	"os"

	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// SearchConfig tunes similarity search behavior
type SearchConfig struct {
	DefaultLimit       int `toml:"default_limit"`
	OverfetchFactor    int `toml:"overfetch_factor"`
	EmbeddingDimension int `toml:"embedding_dimension"`
}

// AppConfig represents the application configuration
type AppConfig struct {
	Search SearchConfig `toml:"search"`

	path string
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("ANAMNESIS_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.Search.DefaultLimit < 0 {
		return goerr.Wrap(ErrInvalidConfig, "search.default_limit must not be negative",
			goerr.V("default_limit", a.Search.DefaultLimit),
		)
	}
	if a.Search.OverfetchFactor < 0 {
		return goerr.Wrap(ErrInvalidConfig, "search.overfetch_factor must not be negative",
			goerr.V("overfetch_factor", a.Search.OverfetchFactor),
		)
	}
	if a.Search.EmbeddingDimension < 0 {
		return goerr.Wrap(ErrInvalidConfig, "search.embedding_dimension must not be negative",
			goerr.V("embedding_dimension", a.Search.EmbeddingDimension),
		)
	}
	return nil
}

// applyDefaults fills unset values with the package defaults
func (a *AppConfig) applyDefaults() {
	if a.Search.DefaultLimit == 0 {
		a.Search.DefaultLimit = usecase.DefaultSimilarLimit
	}
	if a.Search.OverfetchFactor == 0 {
		a.Search.OverfetchFactor = usecase.DefaultOverfetchFactor
	}
	if a.Search.EmbeddingDimension == 0 {
		a.Search.EmbeddingDimension = index.DefaultEmbeddingDimension
	}
}

// Configure loads the configuration file if one was given and resolves
// all defaults. Without a file the built-in defaults are used as-is.
func (a *AppConfig) Configure() error {
	if a.path != "" {
		loaded, err := LoadAppConfiguration(a.path)
		if err != nil {
			return err
		}
		a.Search = loaded.Search
	}
	a.applyDefaults()
	return nil
}

// UseCaseOptions converts the resolved configuration into use case
// construction options
func (a *AppConfig) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithOverfetchFactor(a.Search.OverfetchFactor),
		usecase.WithEmbeddingDimension(a.Search.EmbeddingDimension),
	}
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}
