package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeswadams/ml-linalg/lane"
)

func TestNew32Layout(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"JustUnderLane", 3},
		{"ExactLane", 4},
		{"LanePlusOne", 5},
		{"TwoLanes", 8},
		{"TwoLanesPlusOne", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]float32, tt.n)
			for i := range data {
				data[i] = float32(i + 1)
			}
			v := New32(data)

			assert.Equal(t, tt.n, v.Len())
			assert.Equal(t, data, v.ToSlice())
		})
	}
}

func TestNew64Layout(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5} {
		data := make([]float64, n)
		for i := range data {
			data[i] = float64(i + 1)
		}
		v := New64(data)

		assert.Equal(t, n, v.Len())
		assert.Equal(t, data, v.ToSlice())
	}
}

func TestNewCopiesInput(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5}
	v := New32(data)

	data[0] = 99
	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), got, "vector must not alias the input slice")
}

func TestFilledZeros(t *testing.T) {
	v := Filled32(5, 7)
	assert.Equal(t, []float32{7, 7, 7, 7, 7}, v.ToSlice())

	z := Zeros64(3)
	assert.Equal(t, []float64{0, 0, 0}, z.ToSlice())
	assert.Equal(t, 3, z.Len())
}

func TestRandomDeterministic(t *testing.T) {
	a := Random32(10, 42)
	b := Random32(10, 42)
	c := Random32(10, 43)

	assert.Equal(t, a.ToSlice(), b.ToSlice(), "same seed must reproduce the same vector")
	assert.NotEqual(t, a.ToSlice(), c.ToSlice(), "different seeds must diverge")

	for _, v := range a.ToSlice() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestAt(t *testing.T) {
	v := New32([]float32{10, 20, 30, 40, 50})

	for i, want := range []float32{10, 20, 30, 40, 50} {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := v.At(5)
	var oob *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 5, oob.Index)
	assert.Equal(t, 5, oob.Length)

	_, err = v.At(-1)
	assert.ErrorAs(t, err, &oob)
}

func TestFromLanes(t *testing.T) {
	var z lane.F32x4
	lanes := []lane.F32x4{
		z.Load([]float32{1, 2, 3, 4}),
		z.Load([]float32{5, 6, 7, 8}),
	}

	t.Run("ExactLength", func(t *testing.T) {
		v, err := FromLanes32(lanes, 8)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, v.ToSlice())
	})

	t.Run("ResidualLength", func(t *testing.T) {
		v, err := FromLanes32(lanes, 6)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, v.ToSlice())
		// Positions 7 and 8 of the second lane are dropped and the
		// padding re-zeroed, so whole-lane reductions cannot see them.
		assert.InDelta(t, float32(21), v.Sum(), 1e-5)
	})

	t.Run("DirtyTrailingLane", func(t *testing.T) {
		// Garbage beyond the logical length must be scrubbed on every
		// read path: indexed access, unpacking, and reductions.
		dirty := []lane.F32x4{
			z.Load([]float32{1, 2, 3, 4}),
			{5, 99, 98, 97},
		}
		v, err := FromLanes32(dirty, 5)
		require.NoError(t, err)

		assert.Equal(t, []float32{1, 2, 3, 4, 5}, v.ToSlice())
		assert.InDelta(t, float32(15), v.Sum(), 1e-5)
		assert.Equal(t, float32(5), v.Max())

		last, err := v.At(4)
		require.NoError(t, err)
		assert.Equal(t, float32(5), last)
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := FromLanes32(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("LaneCountMismatch", func(t *testing.T) {
		var mismatch *ErrLengthMismatch
		_, err := FromLanes32(lanes, 12)
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 12, mismatch.Left)
		assert.Equal(t, 8, mismatch.Right)

		_, err = FromLanes32(lanes, 3)
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("NegativeLength", func(t *testing.T) {
		var mismatch *ErrLengthMismatch
		_, err := FromLanes32(nil, -1)
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("Float64", func(t *testing.T) {
		var z64 lane.F64x2
		v, err := FromLanes64([]lane.F64x2{z64.Load([]float64{1, 2}), z64.Load([]float64{3, 9})}, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, v.ToSlice())
	})
}

func TestCopy(t *testing.T) {
	v := New32([]float32{1, 2, 3, 4, 5})
	c := v.Copy()

	assert.Equal(t, v.Len(), c.Len())
	assert.Equal(t, v.ToSlice(), c.ToSlice())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", New32([]float32{1, 2, 3}).String())
	assert.Equal(t, "[]", New64(nil).String())
}

// Nothing in this package returns ErrUnsupportedOperation; it is the
// standard rejection for adapters layering a write surface on top.
func TestUnsupportedOperationSentinel(t *testing.T) {
	err := fmt.Errorf("set element 2: %w", ErrUnsupportedOperation)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "immutable")
}
