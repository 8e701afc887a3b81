package gaussian

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// JSON numbers are float64, so larger seeds cannot be told apart
const maxSeed = 1 << 53

// SamplingOps draws from and fits gaussian variables
type SamplingOps struct {
	*GaussianOps
	source        rand.Source
	sampleSize    int
	maxSampleSize int
}

// GetTools returns sampling tool definitions
func (s *SamplingOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "gaussian.sample",
			Name:        "Sample",
			Description: "Draw random samples from a gaussian variable",
			Parameters: []types.Parameter{
				{Name: "variable", Type: "object", Description: "Gaussian variable {mean, standard_deviation}", Required: true},
				{Name: "n", Type: "number", Description: fmt.Sprintf("Number of samples (default %d)", s.sampleSize), Required: false},
				{Name: "seed", Type: "number", Description: "Seed for a reproducible draw, an integer below 2^53", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "gaussian.fit",
			Name:        "Fit",
			Description: "Estimate a gaussian variable from observed values",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "At least two observations", Required: true},
			},
			Returns: "variable",
		},
	}
}

// Sample draws n values, reproducibly when a seed is given
func (s *SamplingOps) Sample(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := GetVariable(params, "variable")
	if err != nil {
		return FailureFromError(err)
	}

	n := s.sampleSize
	count, ok, err := GetCount(params, "n")
	if err != nil {
		return FailureFromError(err)
	}
	if ok {
		if count == 0 {
			return FailureFromError(fmt.Errorf("%w: n must be positive", gaussian.ErrInvalidParameter))
		}
		n = int(min(count, uint64(s.maxSampleSize)))
	}
	truncated := ok && count > uint64(s.maxSampleSize)

	src := s.source
	seed, seeded, err := GetCount(params, "seed")
	if err != nil {
		return FailureFromError(err)
	}
	if seeded && seed >= maxSeed {
		return FailureFromError(fmt.Errorf("%w: seed must be below 2^53", gaussian.ErrInvalidParameter))
	}
	if seeded {
		src = gaussian.NewSource(seed)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples := v.Sample(src, n)
	if s.metrics != nil {
		s.metrics.RecordSamples(len(samples))
	}

	mean, stdDev := samples[0], 0.0
	if len(samples) > 1 {
		mean, stdDev = stat.MeanStdDev(samples, nil)
	}

	data := map[string]interface{}{
		"samples":       samples,
		"n":             len(samples),
		"sample_mean":   mean,
		"sample_stddev": stdDev,
		"truncated":     truncated,
	}
	if seeded {
		data["seed"] = seed
	}
	return Success(data)
}

// Fit estimates mean and standard deviation from observations
func (s *SamplingOps) Fit(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := GetNumbers(params, "numbers")
	if !ok {
		return Failure("numbers parameter required")
	}

	v, err := gaussian.Fit(numbers)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"variable": variableData(v),
		"n":        len(numbers),
	})
}
