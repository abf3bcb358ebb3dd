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

// Package mat implements dense matrices as stacks of packed vector rows.
//
// Every row is an immutable vector.Packed, so the matrix inherits the
// vector layer's properties: SIMD-lane arithmetic, immutability, and
// free sharing across goroutines. Row operations (scaling, elimination,
// elementwise combination) are vector operations; only the triangular
// substitutions in the LU solver fall back to scalar loops, since they
// are sequential by nature.
//
// Like the vector layer, the matrix API is immutable: every operation
// returns a fresh matrix.
package mat

import (
	"math/rand"
	"strings"

	"github.com/yeswadams/ml-linalg/lane"
	"github.com/yeswadams/ml-linalg/vector"
)

// Dense is an immutable dense matrix of packed vector rows.
type Dense[T lane.Floats, L lane.Ops[L, T]] struct {
	rows, cols int
	data       []vector.Packed[T, L]
}

// Dense32 is a dense matrix of float32 values in four-wide lanes.
type Dense32 = Dense[float32, lane.F32x4]

// Dense64 is a dense matrix of float64 values in two-wide lanes.
type Dense64 = Dense[float64, lane.F64x2]

// New32 builds an r by c float32 matrix from row-major data. A nil data
// slice yields a zero matrix; otherwise data must hold exactly r*c
// values or the call fails with ErrShapeMismatch.
func New32(r, c int, data []float32) (Dense32, error) {
	return newDense[float32, lane.F32x4](r, c, data)
}

// New64 builds an r by c float64 matrix from row-major data. See New32.
func New64(r, c int, data []float64) (Dense64, error) {
	return newDense[float64, lane.F64x2](r, c, data)
}

// FromRows32 stacks packed vectors as matrix rows. All rows must share
// one length. Rows are immutable, so they are referenced, not copied.
func FromRows32(rows []vector.Float32) (Dense32, error) {
	return fromRows[float32, lane.F32x4](rows)
}

// FromRows64 stacks packed vectors as matrix rows. See FromRows32.
func FromRows64(rows []vector.Float64) (Dense64, error) {
	return fromRows[float64, lane.F64x2](rows)
}

// Identity32 builds the n by n float32 identity matrix.
func Identity32(n int) Dense32 {
	return identity[float32, lane.F32x4](n)
}

// Identity64 builds the n by n float64 identity matrix.
func Identity64(n int) Dense64 {
	return identity[float64, lane.F64x2](n)
}

// Random32 builds an r by c float32 matrix of values drawn uniformly
// from [0, 1) by a generator seeded with seed.
func Random32(r, c int, seed int64) Dense32 {
	return random[float32, lane.F32x4](r, c, seed)
}

// Random64 builds an r by c float64 matrix of values drawn uniformly
// from [0, 1) by a generator seeded with seed.
func Random64(r, c int, seed int64) Dense64 {
	return random[float64, lane.F64x2](r, c, seed)
}

func newDense[T lane.Floats, L lane.Ops[L, T]](r, c int, data []T) (Dense[T, L], error) {
	if r < 0 || c < 0 || (data != nil && len(data) != r*c) {
		return Dense[T, L]{}, &ErrShapeMismatch{Op: "new", Ar: r, Ac: c, Br: 1, Bc: len(data)}
	}
	m := Dense[T, L]{rows: r, cols: c, data: make([]vector.Packed[T, L], r)}
	for i := 0; i < r; i++ {
		if data == nil {
			m.data[i] = vector.Zeros[T, L](c)
		} else {
			m.data[i] = vector.New[T, L](data[i*c : (i+1)*c])
		}
	}
	return m, nil
}

func fromRows[T lane.Floats, L lane.Ops[L, T]](rows []vector.Packed[T, L]) (Dense[T, L], error) {
	m := Dense[T, L]{rows: len(rows)}
	if len(rows) > 0 {
		m.cols = rows[0].Len()
	}
	for i, row := range rows {
		if row.Len() != m.cols {
			return Dense[T, L]{}, &ErrShapeMismatch{Op: "fromrows", Ar: 1, Ac: m.cols, Br: 1, Bc: rows[i].Len()}
		}
	}
	m.data = append([]vector.Packed[T, L](nil), rows...)
	return m, nil
}

func identity[T lane.Floats, L lane.Ops[L, T]](n int) Dense[T, L] {
	m := Dense[T, L]{rows: n, cols: n, data: make([]vector.Packed[T, L], n)}
	for i := 0; i < n; i++ {
		row := make([]T, n)
		row[i] = 1
		m.data[i] = vector.New[T, L](row)
	}
	return m
}

func random[T lane.Floats, L lane.Ops[L, T]](r, c int, seed int64) Dense[T, L] {
	rng := rand.New(rand.NewSource(seed))
	m := Dense[T, L]{rows: r, cols: c, data: make([]vector.Packed[T, L], r)}
	for i := 0; i < r; i++ {
		row := make([]T, c)
		for j := range row {
			row[j] = T(rng.Float64())
		}
		m.data[i] = vector.New[T, L](row)
	}
	return m
}

// Dims returns the row and column counts.
func (m Dense[T, L]) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i, column j. Out-of-range indexes fail
// with the vector layer's ErrIndexOutOfRange for the offending axis.
func (m Dense[T, L]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows {
		var zero T
		return zero, &vector.ErrIndexOutOfRange{Index: i, Length: m.rows}
	}
	return m.data[i].At(j)
}

// Row returns row i as a packed vector. Rows are immutable, so the
// vector is shared, not copied.
func (m Dense[T, L]) Row(i int) (vector.Packed[T, L], error) {
	if i < 0 || i >= m.rows {
		return vector.Packed[T, L]{}, &vector.ErrIndexOutOfRange{Index: i, Length: m.rows}
	}
	return m.data[i], nil
}

// Col gathers column j into a fresh packed vector.
func (m Dense[T, L]) Col(j int) (vector.Packed[T, L], error) {
	if j < 0 || j >= m.cols {
		return vector.Packed[T, L]{}, &vector.ErrIndexOutOfRange{Index: j, Length: m.cols}
	}
	col := make([]T, m.rows)
	for i, row := range m.data {
		v, err := row.At(j)
		if err != nil {
			return vector.Packed[T, L]{}, err
		}
		col[i] = v
	}
	return vector.New[T, L](col), nil
}

// ToSlices materializes the matrix as fresh row slices.
func (m Dense[T, L]) ToSlices() [][]T {
	out := make([][]T, m.rows)
	for i, row := range m.data {
		out[i] = row.ToSlice()
	}
	return out
}

// String renders one row per line. Diagnostic only.
func (m Dense[T, L]) String() string {
	var b strings.Builder
	for i, row := range m.data {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.String())
	}
	return b.String()
}
