package gaussian

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustNew(10, 3)
	b := MustNew(4, 4)

	sum := a.Add(b)
	assert.Equal(t, 14.0, sum.Mean())
	assert.InDelta(t, 5.0, sum.StdDev(), 1e-12)

	diff := a.Sub(b)
	assert.Equal(t, 6.0, diff.Mean())
	assert.InDelta(t, 5.0, diff.StdDev(), 1e-12)

	t.Run("commutativity", func(t *testing.T) {
		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, a.Sub(b).StdDev(), b.Sub(a).StdDev())
		assert.Equal(t, -a.Sub(b).Mean(), b.Sub(a).Mean())
	})

	t.Run("identity", func(t *testing.T) {
		zero := Variable{}
		for _, v := range []Variable{a, b, MustNew(-1e-9, 2e-12), MustNew(1e12, 0)} {
			assert.Equal(t, v, v.Add(zero))
			assert.Equal(t, v, v.Sub(zero))
		}
	})

	t.Run("operands unchanged", func(t *testing.T) {
		_ = a.Add(b)
		assert.Equal(t, MustNew(10, 3), a)
		assert.Equal(t, MustNew(4, 4), b)
	})
}

func TestMul(t *testing.T) {
	t.Run("small coefficients of variation", func(t *testing.T) {
		got, err := MustNew(10, 0.01).Mul(MustNew(5, 0.01))
		require.NoError(t, err)
		assert.InDelta(t, 50.0, got.Mean(), 1e-12)
		assert.InDelta(t, math.Sqrt(0.1*0.1+0.05*0.05), got.StdDev(), 1e-12)
		assert.InDelta(t, 0.1118, got.StdDev(), 1e-4)
	})

	t.Run("wide operands are rejected", func(t *testing.T) {
		_, err := MustNew(1, 10).Mul(MustNew(1, 10))
		require.ErrorIs(t, err, ErrNonNormalResult)

		var guard *GuardError
		require.True(t, errors.As(err, &guard))
		assert.Equal(t, OpMultiply, guard.Op)
		assert.InDelta(t, 5.0, guard.CV, 1e-12)
		assert.Equal(t, DefaultProductCVLimit, guard.Limit)
	})

	t.Run("just above limit", func(t *testing.T) {
		// cv 0.31 each gives a combined 0.155.
		_, err := MustNew(1, 0.31).Mul(MustNew(1, 0.31))
		assert.ErrorIs(t, err, ErrNonNormalResult)

		_, err = MustNew(1, 0.29).Mul(MustNew(1, 0.29))
		assert.NoError(t, err)
	})

	t.Run("negative means use absolute cv", func(t *testing.T) {
		got, err := MustNew(-10, 0.01).Mul(MustNew(5, 0.01))
		require.NoError(t, err)
		assert.InDelta(t, -50.0, got.Mean(), 1e-12)
		assert.InDelta(t, 0.1118, got.StdDev(), 1e-4)
	})

	t.Run("exact operand skips guard", func(t *testing.T) {
		got, err := Exact(2).Mul(MustNew(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Mean())
		assert.InDelta(t, 20.0, got.StdDev(), 1e-12)
	})

	t.Run("zero mean operand", func(t *testing.T) {
		got, err := MustNew(0, 1).Mul(MustNew(100, 1))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Mean())
		assert.InDelta(t, 100.0, got.StdDev(), 1e-12)

		_, err = MustNew(0, 1).Mul(MustNew(0, 1))
		assert.ErrorIs(t, err, ErrNonNormalResult)
	})

	t.Run("commutative", func(t *testing.T) {
		a, b := MustNew(3, 0.02), MustNew(-7, 0.1)
		ab, err := a.Mul(b)
		require.NoError(t, err)
		ba, err := b.Mul(a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	})
}

func TestDiv(t *testing.T) {
	t.Run("small coefficients of variation", func(t *testing.T) {
		got, err := MustNew(10, 0.01).Div(MustNew(5, 0.01))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got.Mean(), 1e-12)
		assert.InDelta(t, 2.0*math.Sqrt(0.001*0.001+0.002*0.002), got.StdDev(), 1e-12)
		assert.InDelta(t, 0.004472, got.StdDev(), 1e-6)
	})

	tests := []struct {
		name    string
		a, b    Variable
		operand string
		wantErr error
	}{
		{"dividend above lambda", MustNew(1, 1), MustNew(1, 0.01), "dividend", ErrNonNormalResult},
		{"divisor above gamma", MustNew(10, 0.01), MustNew(1, 0.2), "divisor", ErrNonNormalResult},
		{"gamma undefined for very negative cv", MustNew(-10, 5), MustNew(5, 0.01), "divisor", ErrNonNormalResult},
		{"zero mean divisor", MustNew(1, 0.01), MustNew(0, 1), "divisor", ErrZeroMean},
		{"zero mean exact divisor", MustNew(1, 0.01), Exact(0), "divisor", ErrZeroMean},
		{"zero mean dividend", MustNew(0, 1), MustNew(5, 0.01), "dividend", ErrZeroMean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.a.Div(tt.b)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrNonNormalResult)

			var guard *GuardError
			require.True(t, errors.As(err, &guard))
			assert.Equal(t, OpDivide, guard.Op)
			assert.Equal(t, tt.operand, guard.Operand)
		})
	}

	t.Run("signed cv passes negative dividend", func(t *testing.T) {
		got, err := MustNew(-10, 1).Div(MustNew(5, 0.01))
		require.NoError(t, err)
		assert.InDelta(t, -2.0, got.Mean(), 1e-12)
		assert.InDelta(t, 2.0*math.Sqrt(0.01+0.000004), got.StdDev(), 1e-12)
	})

	t.Run("exact zero dividend", func(t *testing.T) {
		got, err := Exact(0).Div(MustNew(5, 0.01))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Mean())
		assert.Equal(t, 0.0, got.StdDev())
	})
}

func TestCustomThresholds(t *testing.T) {
	loose := Thresholds{ProductCVLimit: 10, RatioLambda: 2, RatioGammaFactor: 1}
	require.NoError(t, loose.Validate())

	_, err := loose.Mul(MustNew(1, 10), MustNew(1, 10))
	assert.NoError(t, err)

	_, err = loose.Div(MustNew(1, 1), MustNew(1, 0.01))
	assert.NoError(t, err)

	strict := DefaultThresholds()
	strict.ProductCVLimit = 1e-4
	_, err = strict.Mul(MustNew(10, 0.01), MustNew(5, 0.01))
	assert.ErrorIs(t, err, ErrNonNormalResult)
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	for _, th := range []Thresholds{
		{ProductCVLimit: 0, RatioLambda: 0.4, RatioGammaFactor: 0.4},
		{ProductCVLimit: 0.15, RatioLambda: -1, RatioGammaFactor: 0.4},
		{ProductCVLimit: 0.15, RatioLambda: 0.4, RatioGammaFactor: math.NaN()},
	} {
		assert.ErrorIs(t, th.Validate(), ErrInvalidParameter)
	}
}

func TestGuardErrorMessage(t *testing.T) {
	_, err := MustNew(1, 10).Mul(MustNew(1, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiply")
	assert.Contains(t, err.Error(), "not near-normal")

	_, err = MustNew(1, 1).Div(Exact(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero mean")
}

func TestLargeMagnitudes(t *testing.T) {
	t.Run("exact ratio keeps zero spread", func(t *testing.T) {
		got, err := Exact(1e200).Div(Exact(1))
		require.NoError(t, err)
		assert.Equal(t, 1e200, got.Mean())
		assert.Equal(t, 0.0, got.StdDev())
	})

	t.Run("ratio spread does not overflow", func(t *testing.T) {
		got, err := MustNew(1e200, 1e197).Div(MustNew(1, 0.001))
		require.NoError(t, err)
		assert.InEpsilon(t, math.Sqrt2*1e197, got.StdDev(), 1e-12)
	})

	t.Run("overflowing ratio is rejected", func(t *testing.T) {
		_, err := Exact(1e200).Div(Exact(1e-200))
		assert.ErrorIs(t, err, ErrOverflow)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("overflowing product is rejected", func(t *testing.T) {
		_, err := Exact(1e200).Mul(Exact(1e200))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("overflowing sum is not finite", func(t *testing.T) {
		got := MustNew(1e308, 1).Add(MustNew(1e308, 1))
		assert.False(t, got.IsFinite())
		assert.True(t, MustNew(1e308, 1).Sub(MustNew(1e308, 1)).IsFinite())
	})
}
