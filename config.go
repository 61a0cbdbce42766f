package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings NewFromEnv reads from the environment.
// Variables use the ESTFOR_ prefix, e.g. ESTFOR_BASE_URL=http://localhost:3000.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"     default:"https://api.estfor.com"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG"        default:"false"`
}

// LoadConfig populates Config from environment variables (prefix ESTFOR_).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ESTFOR", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.HTTPTimeout < 0 {
		return Config{}, fmt.Errorf("ESTFOR_HTTP_TIMEOUT must not be negative: %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}

// Options converts the config into construction options.
func (cfg Config) Options() []Option {
	opts := []Option{WithBaseURL(cfg.BaseURL), WithDebugLogging(cfg.Debug)}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	return opts
}

// NewFromEnv builds a Client from LoadConfig. Explicit opts are applied after
// the environment, so they win.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...)
}
