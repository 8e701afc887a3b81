package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
)

// thresholdsFile is the on-disk profile. Absent keys keep the base value.
type thresholdsFile struct {
	ProductCVLimit   *float64 `yaml:"product_cv_limit" toml:"product_cv_limit"`
	RatioLambda      *float64 `yaml:"ratio_lambda" toml:"ratio_lambda"`
	RatioGammaFactor *float64 `yaml:"ratio_gamma_factor" toml:"ratio_gamma_factor"`
}

// LoadThresholdsFile reads a YAML (.yaml, .yml) or TOML (.toml) thresholds
// profile and overlays it on base.
func LoadThresholdsFile(path string, base gaussian.Thresholds) (gaussian.Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read thresholds file: %w", err)
	}
	return ParseThresholds(data, filepath.Ext(path), base)
}

// ParseThresholds decodes a profile in the format named by ext.
func ParseThresholds(data []byte, ext string, base gaussian.Thresholds) (gaussian.Thresholds, error) {
	var file thresholdsFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return base, fmt.Errorf("failed to parse YAML thresholds: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return base, fmt.Errorf("failed to parse TOML thresholds: %w", err)
		}
	default:
		return base, fmt.Errorf("unsupported thresholds format %q", ext)
	}

	th := base
	if file.ProductCVLimit != nil {
		th.ProductCVLimit = *file.ProductCVLimit
	}
	if file.RatioLambda != nil {
		th.RatioLambda = *file.RatioLambda
	}
	if file.RatioGammaFactor != nil {
		th.RatioGammaFactor = *file.RatioGammaFactor
	}

	if err := th.Validate(); err != nil {
		return base, err
	}
	return th, nil
}
