package gaussian

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedOperand = errors.New("unsupported operand: not a gaussian variable")
	ErrNonNormalResult    = errors.New("result is not near-normal")
	ErrZeroMean           = fmt.Errorf("%w: operand has zero mean", ErrNonNormalResult)
	ErrNegativeStdDev     = errors.New("standard deviation must be non-negative")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrOverflow           = fmt.Errorf("%w: result is not finite", ErrInvalidParameter)
)

// Operation names reported by GuardError.
const (
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// GuardError reports a failed near-normality check.
type GuardError struct {
	Op      string
	Operand string // "combined", "dividend" or "divisor"
	CV      float64
	Limit   float64
	Reason  error
}

func (e *GuardError) Error() string {
	if errors.Is(e.Reason, ErrZeroMean) {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Operand, e.Reason)
	}
	return fmt.Sprintf("%s: %s coefficient of variation %.4g outside limit %.4g: %v",
		e.Op, e.Operand, e.CV, e.Limit, e.Reason)
}

func (e *GuardError) Unwrap() error {
	return e.Reason
}
