// Package gaussian models a scalar quantity with Gaussian (normal) uncertainty
// and propagates that uncertainty through arithmetic.
//
// A Variable is an immutable "mean ± standard deviation" value. Operators
// return new values and never mutate their operands. Every binary operation
// assumes the two operands are independent random variables.
//
// Propagation Rules:
//   - Add, Sub: exact; standard deviations add in quadrature
//   - Mul: first-order (delta method), guarded by a combined coefficient of
//     variation limit
//   - Div: first-order, guarded by the Díaz-Francés & Rubio (2012) ratio
//     criterion
//
// The product and ratio guards are heuristic and their limits are kept in
// Thresholds so they can be tuned without touching the formulas. A failed
// guard returns a *GuardError that unwraps to ErrNonNormalResult.
//
// Distribution Queries:
//   - PDF, LogPDF, CDF, Survival, Quantile: backed by gonum stat/distuv
//   - Sample: draws from a caller-supplied math/rand/v2 Source
//   - Fit: estimates a Variable from observed data
//
// A Variable with zero standard deviation is an exact constant. Its
// distribution queries behave like a point mass at the mean.
//
// Example Usage:
//
//	length := gaussian.MustNew(10, 0.01)
//	width := gaussian.MustNew(5, 0.01)
//	area, err := length.Mul(width)
//	if errors.Is(err, gaussian.ErrNonNormalResult) {
//	    // approximation does not hold for these inputs
//	}
//	fmt.Println(area) // 5.0e+01±1.1e-01
package gaussian
