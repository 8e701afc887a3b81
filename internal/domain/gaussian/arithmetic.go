package gaussian

import (
	"fmt"
	"math"
)

// Add returns v + other. Sums of independent normals are exactly normal.
// Operands near the float64 limit can overflow; check IsFinite.
func (v Variable) Add(other Variable) Variable {
	return Variable{
		mean:   v.mean + other.mean,
		stdDev: math.Hypot(v.stdDev, other.stdDev),
	}
}

// Sub returns v - other. Variances of independent operands add, so the
// standard deviation matches Add.
func (v Variable) Sub(other Variable) Variable {
	return Variable{
		mean:   v.mean - other.mean,
		stdDev: math.Hypot(v.stdDev, other.stdDev),
	}
}

// Mul returns v * other using DefaultThresholds.
func (v Variable) Mul(other Variable) (Variable, error) {
	return DefaultThresholds().Mul(v, other)
}

// Div returns v / other using DefaultThresholds.
func (v Variable) Div(other Variable) (Variable, error) {
	return DefaultThresholds().Div(v, other)
}

// Mul propagates uncertainty through a product with the delta method.
//
// When both operands carry uncertainty, the combined coefficient of variation
// 1/(1/cv_a + 1/cv_b) must stay below ProductCVLimit.
func (t Thresholds) Mul(a, b Variable) (Variable, error) {
	cvA, cvB := productCV(a), productCV(b)
	if cvA > 0 && cvB > 0 {
		combined := 1 / (1/cvA + 1/cvB)
		if !(combined < t.ProductCVLimit) {
			return Variable{}, &GuardError{
				Op:      OpMultiply,
				Operand: "combined",
				CV:      combined,
				Limit:   t.ProductCVLimit,
				Reason:  ErrNonNormalResult,
			}
		}
	}

	return finite(Variable{
		mean:   a.mean * b.mean,
		stdDev: math.Hypot(a.mean*b.stdDev, b.mean*a.stdDev),
	})
}

// Div propagates uncertainty through a ratio.
//
// Near-normality follows Díaz-Francés, E., & Rubio, F. J. (2012), On the
// existence of a normal approximation to the distribution of the ratio of two
// independent normal random variables, Statistical Papers 54(2), 309–323.
// The dividend's signed coefficient of variation must not exceed lambda and
// the divisor's must not exceed gamma = factor·sqrt(lambda² - cv_a²).
func (t Thresholds) Div(a, b Variable) (Variable, error) {
	if b.mean == 0 {
		return Variable{}, &GuardError{Op: OpDivide, Operand: "divisor", Reason: ErrZeroMean}
	}
	if a.mean == 0 && a.stdDev != 0 {
		return Variable{}, &GuardError{Op: OpDivide, Operand: "dividend", Reason: ErrZeroMean}
	}

	cvA, cvB := ratioCV(a), ratioCV(b)
	lambda := t.RatioLambda
	if !(cvA <= lambda) {
		return Variable{}, &GuardError{
			Op:      OpDivide,
			Operand: "dividend",
			CV:      cvA,
			Limit:   lambda,
			Reason:  ErrNonNormalResult,
		}
	}

	// NaN when cv_a < -lambda; the comparison below then fails.
	gamma := t.RatioGammaFactor * math.Sqrt(lambda*lambda-cvA*cvA)
	if !(cvB <= gamma) {
		return Variable{}, &GuardError{
			Op:      OpDivide,
			Operand: "divisor",
			CV:      cvB,
			Limit:   gamma,
			Reason:  ErrNonNormalResult,
		}
	}

	ratio := a.mean / b.mean
	return finite(Variable{
		mean:   ratio,
		stdDev: math.Abs(ratio) * math.Hypot(cvA, cvB),
	})
}

// finite rejects results that overflowed float64.
func finite(v Variable) (Variable, error) {
	if !v.IsFinite() {
		return Variable{}, fmt.Errorf("%w: %v", ErrOverflow, v)
	}
	return v, nil
}

// productCV is |sd/mean|, 0 for exact constants and +Inf for a zero mean
// with spread.
func productCV(v Variable) float64 {
	if v.stdDev == 0 {
		return 0
	}
	return math.Abs(v.stdDev / v.mean)
}

// ratioCV is the signed sd/mean, 0 for exact constants.
func ratioCV(v Variable) float64 {
	if v.stdDev == 0 {
		return 0
	}
	return v.stdDev / v.mean
}
