// Copyright 2026 ml-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vector implements immutable packed vectors: logically
// variable-length float sequences stored as fixed-width SIMD lanes.
//
// A vector of length n over a lane of width w holds n/w full lanes plus,
// when n is not a multiple of w, one residual lane carrying the trailing
// n%w elements in its low positions. The unused high positions of the
// residual are zero and are restored to zero after every operation, so
// padding never leaks into results.
//
// Packed is generic over the scalar type and its lane provider, which
// monomorphizes all lane arithmetic at compile time. The two supported
// instantiations have aliases and constructor twins:
//
//	v := vector.New32([]float32{1, 2, 3, 4, 5}) // one F32x4 lane + residual [5]
//	w := vector.Filled32(5, 10)
//	sum, err := v.Add(w)
//
// Vectors are immutable: every operation returns a fresh vector and no
// method writes through a receiver or operand. Values can be shared
// across goroutines without synchronization.
package vector

import (
	"fmt"
	"math/rand"

	"github.com/yeswadams/ml-linalg/lane"
)

// Packed is an immutable float sequence stored as full SIMD lanes plus an
// optional residual lane for the trailing elements.
type Packed[T lane.Floats, L lane.Ops[L, T]] struct {
	length   int
	lanes    []L
	residual *L
}

// Float32 is a packed vector of float32 values in four-wide lanes.
type Float32 = Packed[float32, lane.F32x4]

// Float64 is a packed vector of float64 values in two-wide lanes.
type Float64 = Packed[float64, lane.F64x2]

// New packs scalars into a vector. The input slice is copied. Generic
// consumers instantiate it directly; the Float32/Float64 twins below
// cover the common concrete calls.
func New[T lane.Floats, L lane.Ops[L, T]](data []T) Packed[T, L] {
	var z L
	w := z.Width()
	p := Packed[T, L]{length: len(data)}
	full := len(data) / w
	if full > 0 {
		p.lanes = make([]L, full)
		for i := range p.lanes {
			p.lanes[i] = z.Load(data[i*w : (i+1)*w])
		}
	}
	if len(data)%w != 0 {
		r := z.Load(data[full*w:])
		p.residual = &r
	}
	return p
}

// Filled builds a vector of n copies of v.
func Filled[T lane.Floats, L lane.Ops[L, T]](n int, v T) Packed[T, L] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return New[T, L](data)
}

// Zeros builds a vector of n zeros.
func Zeros[T lane.Floats, L lane.Ops[L, T]](n int) Packed[T, L] {
	return Filled[T, L](n, 0)
}

// Random builds a vector of n values drawn uniformly from [0, 1) by a
// generator seeded with seed. The same seed always produces the same
// vector.
func Random[T lane.Floats, L lane.Ops[L, T]](n int, seed int64) Packed[T, L] {
	rng := rand.New(rand.NewSource(seed))
	data := make([]T, n)
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return New[T, L](data)
}

// FromLanes wraps pre-packed lanes into a vector of the given logical
// length. The lane slice is copied. When length is not a multiple of the
// lane width the final lane becomes the residual and its unused positions
// are zeroed. Fails with ErrLengthMismatch when length is negative or
// len(lanes) is not exactly the lane count length requires.
func FromLanes[T lane.Floats, L lane.Ops[L, T]](lanes []L, length int) (Packed[T, L], error) {
	var z L
	w := z.Width()
	need := 0
	if length > 0 {
		need = (length + w - 1) / w
	}
	if length < 0 || len(lanes) != need {
		return Packed[T, L]{}, &ErrLengthMismatch{Left: length, Right: len(lanes) * w}
	}
	p := Packed[T, L]{length: length}
	full := length / w
	if full > 0 {
		p.lanes = append([]L(nil), lanes[:full]...)
	}
	if rem := length % w; rem != 0 {
		r := z.Load(lanes[full].Slice()[:rem])
		p.residual = &r
	}
	return p, nil
}

// New32 packs scalars into a float32 vector. The input slice is copied.
func New32(data []float32) Float32 {
	return New[float32, lane.F32x4](data)
}

// New64 packs scalars into a float64 vector. The input slice is copied.
func New64(data []float64) Float64 {
	return New[float64, lane.F64x2](data)
}

// Filled32 builds a float32 vector of n copies of v.
func Filled32(n int, v float32) Float32 {
	return Filled[float32, lane.F32x4](n, v)
}

// Filled64 builds a float64 vector of n copies of v.
func Filled64(n int, v float64) Float64 {
	return Filled[float64, lane.F64x2](n, v)
}

// Zeros32 builds a float32 vector of n zeros.
func Zeros32(n int) Float32 {
	return Zeros[float32, lane.F32x4](n)
}

// Zeros64 builds a float64 vector of n zeros.
func Zeros64(n int) Float64 {
	return Zeros[float64, lane.F64x2](n)
}

// Random32 builds a float32 vector of n values drawn uniformly from
// [0, 1) by a generator seeded with seed.
func Random32(n int, seed int64) Float32 {
	return Random[float32, lane.F32x4](n, seed)
}

// Random64 builds a float64 vector of n values drawn uniformly from
// [0, 1) by a generator seeded with seed.
func Random64(n int, seed int64) Float64 {
	return Random[float64, lane.F64x2](n, seed)
}

// FromLanes32 wraps pre-packed float32 lanes into a vector of the given
// logical length. See FromLanes.
func FromLanes32(lanes []lane.F32x4, length int) (Float32, error) {
	return FromLanes[float32, lane.F32x4](lanes, length)
}

// FromLanes64 wraps pre-packed float64 lanes into a vector of the given
// logical length. See FromLanes.
func FromLanes64(lanes []lane.F64x2, length int) (Float64, error) {
	return FromLanes[float64, lane.F64x2](lanes, length)
}

// width returns the lane width for this instantiation.
func (p Packed[T, L]) width() int {
	var z L
	return z.Width()
}

// rezero keeps the first k positions of l and zeroes the rest. Residual
// lanes pass through it after every operation so transformed padding
// (0+c under AddScalar, 0/0 under Div) never reaches a reduction.
func rezero[T lane.Floats, L lane.Ops[L, T]](l L, k int) L {
	var z L
	return z.Load(l.Slice()[:k])
}

// Len returns the logical element count.
func (p Packed[T, L]) Len() int { return p.length }

// At returns the element at index i, or ErrIndexOutOfRange when i is
// outside [0, Len).
func (p Packed[T, L]) At(i int) (T, error) {
	if i < 0 || i >= p.length {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Length: p.length}
	}
	w := p.width()
	bucket, offset := i/w, i%w
	if bucket < len(p.lanes) {
		return p.lanes[bucket].Extract(offset), nil
	}
	return (*p.residual).Extract(offset), nil
}

// ToSlice materializes all elements into a fresh slice.
func (p Packed[T, L]) ToSlice() []T {
	out := make([]T, 0, p.length)
	for _, l := range p.lanes {
		out = append(out, l.Slice()...)
	}
	if p.residual != nil {
		out = append(out, (*p.residual).Slice()[:p.length%p.width()]...)
	}
	return out
}

// Copy returns a deep copy. Vectors are immutable, so this matters only
// to callers that want allocation ownership.
func (p Packed[T, L]) Copy() Packed[T, L] {
	out := Packed[T, L]{length: p.length}
	if len(p.lanes) > 0 {
		out.lanes = append([]L(nil), p.lanes...)
	}
	if p.residual != nil {
		r := *p.residual
		out.residual = &r
	}
	return out
}

// String renders the elements like a Go slice. Diagnostic only.
func (p Packed[T, L]) String() string {
	return fmt.Sprint(p.ToSlice())
}
