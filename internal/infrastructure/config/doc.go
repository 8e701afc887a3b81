// Package config provides 12-factor configuration management for gaussvar.
//
// Configuration is loaded from environment variables with sensible defaults.
// Guard thresholds can additionally come from a YAML or TOML profile.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Gaussian: Guard thresholds and sampling limits
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - GAUSS_PRODUCT_CV_LIMIT, GAUSS_RATIO_LAMBDA, GAUSS_RATIO_GAMMA_FACTOR
//   - GAUSS_SAMPLE_SIZE, GAUSS_MAX_SAMPLE_SIZE, GAUSS_SEED, GAUSS_THRESHOLDS_FILE
//
// Thresholds Profile (YAML):
//
//	product_cv_limit: 0.1
//	ratio_lambda: 0.4
//	ratio_gamma_factor: 0.4
package config
