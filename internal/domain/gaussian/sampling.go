package gaussian

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSampleSize is the conventional number of draws for Sample.
const DefaultSampleSize = 10000

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^pcgStream)
}

// LockedSource serializes access to a Source so one generator can be shared
// between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

// NewLockedSource wraps src.
func NewLockedSource(src rand.Source) *LockedSource {
	return &LockedSource{src: src}
}

// Uint64 implements rand.Source.
func (s *LockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// Sample draws n independent values from v's distribution using src.
// The same seeded source yields the same draws. It panics if src is nil.
func (v Variable) Sample(src rand.Source, n int) []float64 {
	if src == nil {
		panic("gaussian: nil random source")
	}
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if v.IsExact() {
		for i := range out {
			out[i] = v.mean
		}
		return out
	}

	dist := distuv.Normal{Mu: v.mean, Sigma: v.stdDev, Src: src}
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Fit estimates a Variable from observed data using the sample mean and the
// unbiased sample standard deviation.
func Fit(samples []float64) (Variable, error) {
	if len(samples) < 2 {
		return Variable{}, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInsufficientData, len(samples))
	}
	mean, stdDev := stat.MeanStdDev(samples, nil)
	return New(mean, stdDev)
}
