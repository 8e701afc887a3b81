package gaussian

import (
	"fmt"
	"math"
)

// Default near-normality limits. These are provisional heuristics, not
// derived bounds.
const (
	DefaultProductCVLimit   = 0.15
	DefaultRatioLambda      = 0.4
	DefaultRatioGammaFactor = 0.4
)

// Thresholds holds the limits used by the product and ratio guards.
type Thresholds struct {
	// ProductCVLimit bounds 1/(1/cv_a + 1/cv_b) for multiplication.
	ProductCVLimit float64
	// RatioLambda bounds the dividend's signed coefficient of variation.
	RatioLambda float64
	// RatioGammaFactor scales sqrt(lambda² - cv_a²) into the divisor bound.
	RatioGammaFactor float64
}

// DefaultThresholds returns the standard limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ProductCVLimit:   DefaultProductCVLimit,
		RatioLambda:      DefaultRatioLambda,
		RatioGammaFactor: DefaultRatioGammaFactor,
	}
}

// Validate checks that every limit is positive and finite.
func (t Thresholds) Validate() error {
	limits := []struct {
		name  string
		value float64
	}{
		{"product_cv_limit", t.ProductCVLimit},
		{"ratio_lambda", t.RatioLambda},
		{"ratio_gamma_factor", t.RatioGammaFactor},
	}
	for _, l := range limits {
		if math.IsNaN(l.value) || math.IsInf(l.value, 0) || l.value <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidParameter, l.name, l.value)
		}
	}
	return nil
}
