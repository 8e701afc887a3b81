package gaussian

import (
	"encoding/json"
	"fmt"
	"math"
)

// Variable is a scalar with Gaussian uncertainty. The zero value is the exact
// constant 0±0.
type Variable struct {
	mean   float64
	stdDev float64
}

// New creates a Variable from a mean and a standard deviation.
func New(mean, stdDev float64) (Variable, error) {
	if err := validateField(mean, "mean"); err != nil {
		return Variable{}, err
	}
	if err := validateField(stdDev, "standard_deviation"); err != nil {
		return Variable{}, err
	}
	if stdDev < 0 {
		return Variable{}, fmt.Errorf("%w: got %g", ErrNegativeStdDev, stdDev)
	}
	return Variable{mean: mean, stdDev: stdDev}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(mean, stdDev float64) Variable {
	v, err := New(mean, stdDev)
	if err != nil {
		panic(err)
	}
	return v
}

// Exact returns a constant with no uncertainty.
func Exact(x float64) Variable {
	return MustNew(x, 0)
}

// Mean returns the mean.
func (v Variable) Mean() float64 {
	return v.mean
}

// StdDev returns the standard deviation.
func (v Variable) StdDev() float64 {
	return v.stdDev
}

// Variance returns the squared standard deviation.
func (v Variable) Variance() float64 {
	return v.stdDev * v.stdDev
}

// IsExact reports whether v carries no uncertainty.
func (v Variable) IsExact() bool {
	return v.stdDev == 0
}

// IsFinite reports whether both fields are finite. Only arithmetic that
// overflows float64 produces a non-finite Variable.
func (v Variable) IsFinite() bool {
	return !math.IsInf(v.mean, 0) && !math.IsNaN(v.mean) &&
		!math.IsInf(v.stdDev, 0) && !math.IsNaN(v.stdDev)
}

// String renders mean and standard deviation in scientific notation,
// e.g. "1.2e+03±4.5e+01".
func (v Variable) String() string {
	return fmt.Sprintf("%.1e±%.1e", v.mean, v.stdDev)
}

type variableJSON struct {
	Mean   *float64 `json:"mean"`
	StdDev *float64 `json:"standard_deviation"`
}

// MarshalJSON encodes v as {"mean": ..., "standard_deviation": ...}.
func (v Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(variableJSON{Mean: &v.mean, StdDev: &v.stdDev})
}

// UnmarshalJSON decodes and validates a Variable.
func (v *Variable) UnmarshalJSON(data []byte) error {
	var raw variableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedOperand, err)
	}
	if raw.Mean == nil || raw.StdDev == nil {
		return fmt.Errorf("%w: mean and standard_deviation are required", ErrUnsupportedOperand)
	}
	parsed, err := New(*raw.Mean, *raw.StdDev)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromParam converts an untyped operand into a Variable. It accepts a
// Variable, a *Variable, or a map with numeric "mean" and
// "standard_deviation" entries. Anything else, plain numbers included, fails
// with ErrUnsupportedOperand.
func FromParam(p interface{}) (Variable, error) {
	switch val := p.(type) {
	case Variable:
		return val, nil
	case *Variable:
		if val == nil {
			return Variable{}, fmt.Errorf("%w: nil", ErrUnsupportedOperand)
		}
		return *val, nil
	case map[string]interface{}:
		mean, ok := toFloat(val["mean"])
		if !ok {
			return Variable{}, fmt.Errorf("%w: numeric mean required", ErrUnsupportedOperand)
		}
		stdDev, ok := toFloat(val["standard_deviation"])
		if !ok {
			return Variable{}, fmt.Errorf("%w: numeric standard_deviation required", ErrUnsupportedOperand)
		}
		return New(mean, stdDev)
	default:
		return Variable{}, fmt.Errorf("%w: got %T", ErrUnsupportedOperand, p)
	}
}

func toFloat(x interface{}) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func validateField(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidParameter, name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s is infinite", ErrInvalidParameter, name)
	}
	return nil
}
