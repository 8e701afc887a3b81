package gaussian

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// DistributionOps evaluates density and probability functions
type DistributionOps struct {
	*GaussianOps
}

// GetTools returns distribution tool definitions
func (d *DistributionOps) GetTools() []types.Tool {
	variable := types.Parameter{Name: "variable", Type: "object", Description: "Gaussian variable {mean, standard_deviation}", Required: true}

	return []types.Tool{
		{
			ID:          "gaussian.pdf",
			Name:        "Probability Density",
			Description: "Probability density and its logarithm at x",
			Parameters: []types.Parameter{
				variable,
				{Name: "x", Type: "number", Description: "Point to evaluate", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "gaussian.cdf",
			Name:        "Cumulative Distribution",
			Description: "Probability that the variable is at most x",
			Parameters: []types.Parameter{
				variable,
				{Name: "x", Type: "number", Description: "Point to evaluate", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "gaussian.quantile",
			Name:        "Quantile",
			Description: "Inverse of the cumulative distribution",
			Parameters: []types.Parameter{
				variable,
				{Name: "p", Type: "number", Description: "Probability in [0, 1]", Required: true},
			},
			Returns: "number",
		},
	}
}

// PDF evaluates the probability density
func (d *DistributionOps) PDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := GetVariable(params, "variable")
	if err != nil {
		return FailureFromError(err)
	}
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Success(map[string]interface{}{
		"value":     jsonFloat(v.PDF(x)),
		"log_value": jsonFloat(v.LogPDF(x)),
	})
}

// CDF evaluates the cumulative distribution and its complement
func (d *DistributionOps) CDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := GetVariable(params, "variable")
	if err != nil {
		return FailureFromError(err)
	}
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Success(map[string]interface{}{
		"value":    v.CDF(x),
		"survival": v.Survival(x),
	})
}

// Quantile inverts the cumulative distribution
func (d *DistributionOps) Quantile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := GetVariable(params, "variable")
	if err != nil {
		return FailureFromError(err)
	}
	p, ok := GetNumber(params, "p")
	if !ok {
		return Failure("p parameter required")
	}
	if !(p >= 0 && p <= 1) {
		return FailureFromError(fmt.Errorf("%w: p must be in [0, 1]", gaussian.ErrInvalidParameter))
	}
	return Success(map[string]interface{}{"value": jsonFloat(v.Quantile(p))})
}
