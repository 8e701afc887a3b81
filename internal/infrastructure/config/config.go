package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Gaussian  GaussianConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// GaussianConfig holds propagation thresholds and sampling limits.
type GaussianConfig struct {
	ProductCVLimit   float64 `envconfig:"GAUSS_PRODUCT_CV_LIMIT" default:"0.15"`
	RatioLambda      float64 `envconfig:"GAUSS_RATIO_LAMBDA" default:"0.4"`
	RatioGammaFactor float64 `envconfig:"GAUSS_RATIO_GAMMA_FACTOR" default:"0.4"`
	SampleSize       int     `envconfig:"GAUSS_SAMPLE_SIZE" default:"10000"`
	MaxSampleSize    int     `envconfig:"GAUSS_MAX_SAMPLE_SIZE" default:"1000000"`
	// Seed of 0 seeds the shared generator from the clock.
	Seed           uint64 `envconfig:"GAUSS_SEED" default:"0"`
	ThresholdsFile string `envconfig:"GAUSS_THRESHOLDS_FILE"`
}

// Thresholds returns the configured guard limits.
func (g GaussianConfig) Thresholds() gaussian.Thresholds {
	return gaussian.Thresholds{
		ProductCVLimit:   g.ProductCVLimit,
		RatioLambda:      g.RatioLambda,
		RatioGammaFactor: g.RatioGammaFactor,
	}
}

// Load loads configuration from environment variables, then applies the
// thresholds file if one is configured.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Gaussian.ThresholdsFile != "" {
		th, err := LoadThresholdsFile(cfg.Gaussian.ThresholdsFile, cfg.Gaussian.Thresholds())
		if err != nil {
			return nil, err
		}
		cfg.Gaussian.ProductCVLimit = th.ProductCVLimit
		cfg.Gaussian.RatioLambda = th.RatioLambda
		cfg.Gaussian.RatioGammaFactor = th.RatioGammaFactor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	th := gaussian.DefaultThresholds()
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Gaussian: GaussianConfig{
			ProductCVLimit:   th.ProductCVLimit,
			RatioLambda:      th.RatioLambda,
			RatioGammaFactor: th.RatioGammaFactor,
			SampleSize:       gaussian.DefaultSampleSize,
			MaxSampleSize:    1000000,
		},
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if err := c.Gaussian.Thresholds().Validate(); err != nil {
		return fmt.Errorf("invalid gaussian thresholds: %w", err)
	}
	if c.Gaussian.SampleSize <= 0 {
		return fmt.Errorf("GAUSS_SAMPLE_SIZE must be positive, got %d", c.Gaussian.SampleSize)
	}
	if c.Gaussian.MaxSampleSize < c.Gaussian.SampleSize {
		return fmt.Errorf("GAUSS_MAX_SAMPLE_SIZE (%d) must be at least GAUSS_SAMPLE_SIZE (%d)",
			c.Gaussian.MaxSampleSize, c.Gaussian.SampleSize)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit values must be positive when enabled")
	}
	return nil
}
