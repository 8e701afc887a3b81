package gaussian

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSampleLength(t *testing.T) {
	v := MustNew(5, 1)
	src := NewSource(1)

	assert.Len(t, v.Sample(src, DefaultSampleSize), DefaultSampleSize)
	assert.Len(t, v.Sample(src, 1), 1)
	assert.Empty(t, v.Sample(src, 0))
	assert.Empty(t, v.Sample(src, -3))
}

func TestSampleDeterministic(t *testing.T) {
	v := MustNew(5, 1)
	first := v.Sample(NewSource(42), 100)
	second := v.Sample(NewSource(42), 100)
	other := v.Sample(NewSource(43), 100)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestSampleConverges(t *testing.T) {
	v := MustNew(1230, 45)
	const n = 100000

	for seed := uint64(1); seed <= 5; seed++ {
		mean, sd := stat.MeanStdDev(v.Sample(NewSource(seed), n), nil)
		assert.InDelta(t, v.Mean(), mean, 0.02*v.StdDev(), "seed %d", seed)
		assert.InDelta(t, v.StdDev(), sd, 0.02*v.StdDev(), "seed %d", seed)
	}
}

func TestSampleExact(t *testing.T) {
	for _, x := range Exact(2).Sample(NewSource(1), 10) {
		assert.Equal(t, 2.0, x)
	}
}

func TestSampleNilSource(t *testing.T) {
	assert.Panics(t, func() { MustNew(0, 1).Sample(nil, 1) })
}

func TestLockedSourceConcurrent(t *testing.T) {
	src := NewLockedSource(NewSource(7))
	v := MustNew(0, 1)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Sample(src, 1000)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Len(t, r, 1000)
	}
}

func TestFit(t *testing.T) {
	want := MustNew(-7, 0.5)
	got, err := Fit(want.Sample(NewSource(3), 50000))
	require.NoError(t, err)
	assert.InDelta(t, want.Mean(), got.Mean(), 0.01)
	assert.InDelta(t, want.StdDev(), got.StdDev(), 0.01)

	got, err = Fit([]float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Mean())
	assert.InDelta(t, 1.4142135623730951, got.StdDev(), 1e-12)

	_, err = Fit([]float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}
