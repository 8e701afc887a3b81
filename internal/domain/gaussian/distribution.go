package gaussian

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

func (v Variable) normal() distuv.Normal {
	return distuv.Normal{Mu: v.mean, Sigma: v.stdDev}
}

// PDF returns the probability density at x. An exact variable is a point
// mass: +Inf at the mean, 0 elsewhere.
func (v Variable) PDF(x float64) float64 {
	if v.IsExact() {
		if x == v.mean {
			return math.Inf(1)
		}
		return 0
	}
	return v.normal().Prob(x)
}

// LogPDF returns the log of the probability density at x.
func (v Variable) LogPDF(x float64) float64 {
	if v.IsExact() {
		if x == v.mean {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return v.normal().LogProb(x)
}

// CDF returns P(X <= x).
func (v Variable) CDF(x float64) float64 {
	if v.IsExact() {
		if x < v.mean {
			return 0
		}
		return 1
	}
	return v.normal().CDF(x)
}

// Survival returns P(X > x).
func (v Variable) Survival(x float64) float64 {
	if v.IsExact() {
		return 1 - v.CDF(x)
	}
	return v.normal().Survival(x)
}

// Quantile returns the inverse CDF at p. It panics if p is outside [0, 1].
func (v Variable) Quantile(p float64) float64 {
	if p < 0 || p > 1 {
		panic(badPercentile)
	}
	if v.IsExact() {
		return v.mean
	}
	return v.normal().Quantile(p)
}

const badPercentile = "gaussian: percentile out of bounds"
