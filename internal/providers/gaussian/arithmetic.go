package gaussian

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// ArithmeticOps propagates uncertainty through the four basic operations
type ArithmeticOps struct {
	*GaussianOps
}

var operandParams = []types.Parameter{
	{Name: "a", Type: "object", Description: "Left operand {mean, standard_deviation}", Required: true},
	{Name: "b", Type: "object", Description: "Right operand {mean, standard_deviation}", Required: true},
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	guarded := append(append([]types.Parameter{}, operandParams...),
		types.Parameter{Name: "product_cv_limit", Type: "number", Description: "Override product CV limit", Required: false},
		types.Parameter{Name: "ratio_lambda", Type: "number", Description: "Override ratio lambda", Required: false},
		types.Parameter{Name: "ratio_gamma_factor", Type: "number", Description: "Override ratio gamma factor", Required: false},
	)

	return []types.Tool{
		{
			ID:          "gaussian.add",
			Name:        "Add",
			Description: "Sum of two independent gaussian variables",
			Parameters:  operandParams,
			Returns:     "variable",
		},
		{
			ID:          "gaussian.subtract",
			Name:        "Subtract",
			Description: "Difference of two independent gaussian variables",
			Parameters:  operandParams,
			Returns:     "variable",
		},
		{
			ID:          "gaussian.multiply",
			Name:        "Multiply",
			Description: "Product of two gaussian variables, rejected when not near-normal",
			Parameters:  guarded,
			Returns:     "variable",
		},
		{
			ID:          "gaussian.divide",
			Name:        "Divide",
			Description: "Ratio of two gaussian variables, rejected when not near-normal",
			Parameters:  guarded,
			Returns:     "variable",
		},
	}
}

func (a *ArithmeticOps) operands(params map[string]interface{}) (gaussian.Variable, gaussian.Variable, error) {
	x, err := GetVariable(params, "a")
	if err != nil {
		return gaussian.Variable{}, gaussian.Variable{}, err
	}
	y, err := GetVariable(params, "b")
	if err != nil {
		return gaussian.Variable{}, gaussian.Variable{}, err
	}
	return x, y, nil
}

// limits applies per-call overrides on top of the configured limits
func (a *ArithmeticOps) limits(params map[string]interface{}) (gaussian.Thresholds, error) {
	th := a.thresholds
	overrides := []struct {
		key string
		dst *float64
	}{
		{"product_cv_limit", &th.ProductCVLimit},
		{"ratio_lambda", &th.RatioLambda},
		{"ratio_gamma_factor", &th.RatioGammaFactor},
	}
	for _, o := range overrides {
		if _, present := params[o.key]; !present {
			continue
		}
		val, ok := GetNumber(params, o.key)
		if !ok {
			return th, fmt.Errorf("%w: %s must be a number", gaussian.ErrInvalidParameter, o.key)
		}
		*o.dst = val
	}
	return th, th.Validate()
}

// Add sums two variables
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := a.operands(params)
	if err != nil {
		return FailureFromError(err)
	}
	return finiteResult(x.Add(y))
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := a.operands(params)
	if err != nil {
		return FailureFromError(err)
	}
	return finiteResult(x.Sub(y))
}

func finiteResult(v gaussian.Variable) (*types.Result, error) {
	if !v.IsFinite() {
		return FailureFromError(fmt.Errorf("%w: %v", gaussian.ErrOverflow, v))
	}
	return Success(map[string]interface{}{"result": variableData(v)})
}

// Multiply multiplies two variables under the product guard
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := a.operands(params)
	if err != nil {
		return FailureFromError(err)
	}
	th, err := a.limits(params)
	if err != nil {
		return FailureFromError(err)
	}

	result, err := th.Mul(x, y)
	if err != nil {
		return a.fail(ctx, gaussian.OpMultiply, err)
	}
	return Success(map[string]interface{}{"result": variableData(result)})
}

// Divide divides a by b under the ratio guard
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, err := a.operands(params)
	if err != nil {
		return FailureFromError(err)
	}
	th, err := a.limits(params)
	if err != nil {
		return FailureFromError(err)
	}

	result, err := th.Div(x, y)
	if err != nil {
		return a.fail(ctx, gaussian.OpDivide, err)
	}
	return Success(map[string]interface{}{"result": variableData(result)})
}
