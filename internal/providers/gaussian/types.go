package gaussian

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/gaussvar/internal/domain/gaussian"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/gaussvar/internal/shared/types"
)

// Error kinds reported in Result.Data["error_kind"]
const (
	KindUnsupportedOperand = "unsupported_operand"
	KindNonNormalResult    = "non_normal_result"
	KindZeroMean           = "zero_mean"
	KindInvalidParameter   = "invalid_parameter"
	KindInsufficientData   = "insufficient_data"
	KindInternal           = "internal"
)

// GaussianOps holds state shared by every op group
type GaussianOps struct {
	thresholds gaussian.Thresholds
	logger     *zap.Logger
	metrics    *monitoring.Metrics
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureFromError creates a failed result tagged with the error's kind
func FailureFromError(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{"error_kind": ErrorKind(err)},
	}, nil
}

// ErrorKind classifies a domain error
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, gaussian.ErrZeroMean):
		return KindZeroMean
	case errors.Is(err, gaussian.ErrNonNormalResult):
		return KindNonNormalResult
	case errors.Is(err, gaussian.ErrUnsupportedOperand):
		return KindUnsupportedOperand
	case errors.Is(err, gaussian.ErrNegativeStdDev), errors.Is(err, gaussian.ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, gaussian.ErrInsufficientData):
		return KindInsufficientData
	default:
		return KindInternal
	}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toNumber(val)
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toNumber(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

func toNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetVariable extracts a gaussian variable operand
func GetVariable(params map[string]interface{}, key string) (gaussian.Variable, error) {
	val, ok := params[key]
	if !ok {
		return gaussian.Variable{}, fmt.Errorf("%w: %s required", gaussian.ErrUnsupportedOperand, key)
	}
	v, err := gaussian.FromParam(val)
	if err != nil {
		return gaussian.Variable{}, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// GetCount extracts a non-negative integer
func GetCount(params map[string]interface{}, key string) (uint64, bool, error) {
	x, ok := GetNumber(params, key)
	if !ok {
		if _, present := params[key]; present {
			return 0, true, fmt.Errorf("%w: %s must be a number", gaussian.ErrInvalidParameter, key)
		}
		return 0, false, nil
	}
	if x < 0 || x != math.Trunc(x) || x >= 1<<64 {
		return 0, true, fmt.Errorf("%w: %s must be a non-negative integer", gaussian.ErrInvalidParameter, key)
	}
	return uint64(x), true, nil
}

func variableData(v gaussian.Variable) map[string]interface{} {
	return map[string]interface{}{
		"mean":               jsonFloat(v.Mean()),
		"standard_deviation": jsonFloat(v.StdDev()),
		"display":            v.String(),
	}
}

// jsonFloat keeps infinities and NaN encodable
func jsonFloat(x float64) interface{} {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	default:
		return x
	}
}

// fail records guard rejections before converting err to a result
func (g *GaussianOps) fail(ctx context.Context, op string, err error) (*types.Result, error) {
	kind := ErrorKind(err)
	if kind == KindNonNormalResult || kind == KindZeroMean {
		if g.metrics != nil {
			g.metrics.RecordGuardRejection(op, kind)
		}
		g.logger.Info("operation rejected",
			zap.String("trace_id", tracing.GetTraceID(ctx).String()),
			zap.String("operation", op),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
	return FailureFromError(err)
}
