package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveSum32(data []float32) float32 {
	var s float32
	for _, v := range data {
		s += v
	}
	return s
}

func TestSum(t *testing.T) {
	// Lengths straddling the lane width: empty, partial, exact, and
	// exact-plus-residual layouts.
	for _, n := range []int{0, 1, 3, 4, 5, 8, 9, 31} {
		data := make([]float32, n)
		for i := range data {
			data[i] = float32(i + 1)
		}
		v := New32(data)
		assert.InDelta(t, naiveSum32(data), v.Sum(), 1e-4, "length %d", n)
	}
}

func TestSum64(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7} {
		data := make([]float64, n)
		for i := range data {
			data[i] = float64(i) * 0.5
		}
		var want float64
		for _, v := range data {
			want += v
		}
		assert.InDelta(t, want, New64(data).Sum(), 1e-12, "length %d", n)
	}
}

func TestSumNaNPolicy(t *testing.T) {
	nan := float32(math.NaN())

	t.Run("ResidualOnly", func(t *testing.T) {
		v := New32([]float32{1, nan, 3})
		assert.InDelta(t, float32(4), v.Sum(), 1e-5)
	})

	t.Run("FullLanePlusResidual", func(t *testing.T) {
		v := New32([]float32{1, nan, 3, 4, 5})
		assert.InDelta(t, float32(13), v.Sum(), 1e-5)
	})

	t.Run("NaNInResidual", func(t *testing.T) {
		// The residual seeds the accumulator, so a NaN there masks its
		// fold position across every full lane.
		v := New32([]float32{1, 2, 3, 4, nan})
		assert.InDelta(t, float32(9), v.Sum(), 1e-5)
	})

	t.Run("AllNaN", func(t *testing.T) {
		v := New32([]float32{nan, nan})
		assert.InDelta(t, float32(0), v.Sum(), 1e-5)
	})
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"WithResidual", []float32{1, 2, 3, 4, 5}, []float32{1, 1, 1, 1, 1}, 15},
		{"Empty", nil, nil, 0},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New32(tt.a).Dot(New32(tt.b))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		var mismatch *ErrLengthMismatch
		_, err := New32([]float32{1}).Dot(New32([]float32{1, 2}))
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestMean(t *testing.T) {
	assert.InDelta(t, float32(2), New32([]float32{1, 2, 3}).Mean(), 1e-5)
	assert.InDelta(t, float64(2.5), New64([]float64{1, 2, 3, 4}).Mean(), 1e-12)
	assert.True(t, math.IsNaN(float64(New32(nil).Mean())), "mean of empty is NaN, not an error")
}

func TestNorm(t *testing.T) {
	t.Run("Euclidean", func(t *testing.T) {
		got, err := New32([]float32{3, 4}).Norm(Euclidean)
		require.NoError(t, err)
		assert.InDelta(t, float32(5), got, 1e-5)

		got, err = New32([]float32{1, 2, 2, 4, 2}).Norm(Euclidean)
		require.NoError(t, err)
		assert.InDelta(t, float32(math.Sqrt(29)), got, 1e-5)
	})

	t.Run("Manhattan", func(t *testing.T) {
		got, err := New32([]float32{1, -2, 3, -4, 5}).Norm(Manhattan)
		require.NoError(t, err)
		assert.InDelta(t, float32(15), got, 1e-5)
	})

	t.Run("Unsupported", func(t *testing.T) {
		var unsupported *ErrUnsupportedNorm
		_, err := New32([]float32{1}).Norm(NormKind(99))
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, NormKind(99), unsupported.Kind)
	})

	t.Run("KindString", func(t *testing.T) {
		assert.Equal(t, "euclidean", Euclidean.String())
		assert.Equal(t, "manhattan", Manhattan.String())
		assert.Equal(t, "unknown", NormKind(99).String())
	})
}

func TestDistance(t *testing.T) {
	a := New32([]float32{1, 2})
	b := New32([]float32{4, 6})

	got, err := a.Distance(b, Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, float32(5), got, 1e-5)

	got, err = a.Distance(b, Manhattan)
	require.NoError(t, err)
	assert.InDelta(t, float32(7), got, 1e-5)

	var mismatch *ErrLengthMismatch
	_, err = a.Distance(New32([]float32{1}), Euclidean)
	assert.ErrorAs(t, err, &mismatch)

	var unsupported *ErrUnsupportedNorm
	_, err = a.Distance(b, NormKind(99))
	assert.ErrorAs(t, err, &unsupported)
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name     string
		data     []float32
		max, min float32
	}{
		{"Single", []float32{7}, 7, 7},
		{"FullLane", []float32{4, 1, 3, 2}, 4, 1},
		{"WithResidual", []float32{1, 2, 3, 4, 5}, 5, 1},
		{"ResidualHoldsMax", []float32{1, 2, 3, 4, 99}, 99, 1},
		{"MultiLane", []float32{5, 9, 2, 8, 1, 7, 3, 6, 4}, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New32(tt.data)
			assert.Equal(t, tt.max, v.Max())
			assert.Equal(t, tt.min, v.Min())
		})
	}
}

// All-negative data with a residual: the zero padding would win Max if
// it were allowed to take part.
func TestMaxMinIgnorePadding(t *testing.T) {
	v := New32([]float32{-5, -6, -7, -8, -9})
	assert.Equal(t, float32(-5), v.Max())
	assert.Equal(t, float32(-9), v.Min())

	w := New64([]float64{-1, -2, -3})
	assert.Equal(t, float64(-1), w.Max())
	assert.Equal(t, float64(-3), w.Min())
}

func TestMaxMinEmpty(t *testing.T) {
	v := New32(nil)
	assert.Equal(t, float32(0), v.Max(), "documented: empty vector reduces to the zero value")
	assert.Equal(t, float32(0), v.Min())
}

// End-to-end walk of the packing scenario: five elements over four-wide
// lanes give one full lane plus a one-element residual.
func TestFiveElementScenario(t *testing.T) {
	v := New32([]float32{1, 2, 3, 4, 5})

	assert.Equal(t, 5, v.Len())
	assert.InDelta(t, float32(15), v.Sum(), 1e-5)
	assert.Equal(t, float32(5), v.Max())
	assert.Equal(t, float32(1), v.Min())
	assert.InDelta(t, float32(3), v.Mean(), 1e-5)

	last, err := v.At(4)
	require.NoError(t, err)
	assert.Equal(t, float32(5), last)
}
