package gaussian

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// ValueOps constructs and renders gaussian variables
type ValueOps struct {
	*GaussianOps
}

// GetTools returns value tool definitions
func (v *ValueOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "gaussian.new",
			Name:        "New Variable",
			Description: "Validate a mean and standard deviation pair",
			Parameters: []types.Parameter{
				{Name: "mean", Type: "number", Description: "Mean", Required: true},
				{Name: "standard_deviation", Type: "number", Description: "Non-negative standard deviation (default 0)", Required: false},
			},
			Returns: "variable",
		},
		{
			ID:          "gaussian.format",
			Name:        "Format",
			Description: "Render a variable as mean±stddev in scientific notation",
			Parameters: []types.Parameter{
				{Name: "variable", Type: "object", Description: "Gaussian variable {mean, standard_deviation}", Required: true},
			},
			Returns: "string",
		},
	}
}

// New validates and returns a variable
func (v *ValueOps) New(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mean, ok := GetNumber(params, "mean")
	if !ok {
		return Failure("mean parameter required")
	}

	stdDev := 0.0
	if _, present := params["standard_deviation"]; present {
		if stdDev, ok = GetNumber(params, "standard_deviation"); !ok {
			return FailureFromError(fmt.Errorf("%w: standard_deviation must be a number", gaussian.ErrInvalidParameter))
		}
	}

	variable, err := gaussian.New(mean, stdDev)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{"variable": variableData(variable)})
}

// Format renders a variable for display
func (v *ValueOps) Format(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	variable, err := GetVariable(params, "variable")
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{"display": variable.String()})
}
