package config

import "github.com/kelseyhightower/envconfig"

// Config holds the service configuration, parsed from SPOTTED_-prefixed
// environment variables.
type Config struct {
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// PageSize is the default explore-page window; requests may override it.
	PageSize int `envconfig:"PAGE_SIZE" default:"9"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("spotted", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
