package config

import "time"

// Config represents the complete estforctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Health  HealthConfig  `mapstructure:"health"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the Estfor API connection details
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// HealthConfig tunes `subgraph-health --wait` polling
type HealthConfig struct {
	MaxWait         time.Duration `mapstructure:"max_wait"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
