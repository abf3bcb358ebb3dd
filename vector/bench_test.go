package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Sizes typical for embedding workloads, plus a residual tail so the
// benchmarks cover the partial-lane path.
var benchSizes = []int{128, 768, 1539}

func naiveDot32(a, b []float32) float32 {
	var s float32
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// TestVekParity checks the packed reductions against vek's SIMD kernels
// on data with a residual tail.
func TestVekParity(t *testing.T) {
	const n = 1003
	av := Random32(n, 11)
	bv := Random32(n, 12)
	a, b := av.ToSlice(), bv.ToSlice()

	assert.InDelta(t, vek32.Sum(a), av.Sum(), 0.5)

	dot, err := av.Dot(bv)
	require.NoError(t, err)
	assert.InDelta(t, vek32.Dot(a, b), dot, 0.5)

	norm, err := av.Norm(Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, vek32.Norm(a), norm, 1e-2)

	dist, err := av.Distance(bv, Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, vek32.Distance(a, b), dist, 1e-2)
}

func TestVekParity64(t *testing.T) {
	const n = 501
	av := Random64(n, 21)
	bv := Random64(n, 22)
	a, b := av.ToSlice(), bv.ToSlice()

	assert.InDelta(t, vek.Sum(a), av.Sum(), 1e-9)

	dot, err := av.Dot(bv)
	require.NoError(t, err)
	assert.InDelta(t, vek.Dot(a, b), dot, 1e-9)
}

func BenchmarkSum(b *testing.B) {
	for _, size := range benchSizes {
		v := Random32(size, int64(size))
		data := v.ToSlice()
		name := fmt.Sprintf("%d", size)

		b.Run("Packed-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = v.Sum()
			}
		})

		b.Run("Vek32-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = vek32.Sum(data)
			}
		})

		b.Run("Naive-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = naiveSum32(data)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, size := range benchSizes {
		v := Random32(size, int64(size))
		w := Random32(size, int64(size)+1)
		dv, dw := v.ToSlice(), w.ToSlice()
		name := fmt.Sprintf("%d", size)

		b.Run("Packed-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				_, _ = v.Dot(w)
			}
		})

		b.Run("Vek32-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				_ = vek32.Dot(dv, dw)
			}
		})

		b.Run("Naive-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				_ = naiveDot32(dv, dw)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, size := range benchSizes {
		v := Random32(size, int64(size))
		w := Random32(size, int64(size)+1)
		name := fmt.Sprintf("%d", size)

		b.Run("Packed-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				_, _ = v.Add(w)
			}
		})

		b.Run("Naive-"+name, func(b *testing.B) {
			dv, dw := v.ToSlice(), w.ToSlice()
			b.ResetTimer()
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				out := make([]float32, size)
				for j := range dv {
					out[j] = dv[j] + dw[j]
				}
				_ = out
			}
		})
	}
}

func BenchmarkNorm(b *testing.B) {
	for _, size := range benchSizes {
		v := Random32(size, int64(size))
		data := v.ToSlice()
		name := fmt.Sprintf("%d", size)

		b.Run("Packed-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_, _ = v.Norm(Euclidean)
			}
		})

		b.Run("Vek32-"+name, func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = vek32.Norm(data)
			}
		})
	}
}
