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

package mat

import "github.com/yeswadams/ml-linalg/vector"

// binary applies a row-level vector operation over two matrices of equal
// shape.
func (m Dense[T, L]) binary(o Dense[T, L], opName string, op func(a, b vector.Packed[T, L]) (vector.Packed[T, L], error)) (Dense[T, L], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Dense[T, L]{}, &ErrShapeMismatch{Op: opName, Ar: m.rows, Ac: m.cols, Br: o.rows, Bc: o.cols}
	}
	out := Dense[T, L]{rows: m.rows, cols: m.cols, data: make([]vector.Packed[T, L], m.rows)}
	for i := range m.data {
		row, err := op(m.data[i], o.data[i])
		if err != nil {
			return Dense[T, L]{}, err
		}
		out.data[i] = row
	}
	return out, nil
}

// Add returns the elementwise sum of two matrices of equal shape, or
// ErrShapeMismatch.
func (m Dense[T, L]) Add(o Dense[T, L]) (Dense[T, L], error) {
	return m.binary(o, "add", func(a, b vector.Packed[T, L]) (vector.Packed[T, L], error) {
		return a.Add(b)
	})
}

// Sub returns the elementwise difference, or ErrShapeMismatch.
func (m Dense[T, L]) Sub(o Dense[T, L]) (Dense[T, L], error) {
	return m.binary(o, "sub", func(a, b vector.Packed[T, L]) (vector.Packed[T, L], error) {
		return a.Sub(b)
	})
}

// MulElem returns the elementwise (Hadamard) product, or
// ErrShapeMismatch.
func (m Dense[T, L]) MulElem(o Dense[T, L]) (Dense[T, L], error) {
	return m.binary(o, "mulelem", func(a, b vector.Packed[T, L]) (vector.Packed[T, L], error) {
		return a.Mul(b)
	})
}

// Scale multiplies every element by v.
func (m Dense[T, L]) Scale(v T) Dense[T, L] {
	out := Dense[T, L]{rows: m.rows, cols: m.cols, data: make([]vector.Packed[T, L], m.rows)}
	for i, row := range m.data {
		out.data[i] = row.MulScalar(v)
	}
	return out
}

// Mul returns the matrix product m·o, or ErrShapeMismatch when the inner
// dimensions differ. Each output element is a packed dot product of a
// row of m with a column of o.
func (m Dense[T, L]) Mul(o Dense[T, L]) (Dense[T, L], error) {
	if m.cols != o.rows {
		return Dense[T, L]{}, &ErrShapeMismatch{Op: "mul", Ar: m.rows, Ac: m.cols, Br: o.rows, Bc: o.cols}
	}
	bcols := make([]vector.Packed[T, L], o.cols)
	for j := 0; j < o.cols; j++ {
		col, err := o.Col(j)
		if err != nil {
			return Dense[T, L]{}, err
		}
		bcols[j] = col
	}
	out := Dense[T, L]{rows: m.rows, cols: o.cols, data: make([]vector.Packed[T, L], m.rows)}
	for i := 0; i < m.rows; i++ {
		row := make([]T, o.cols)
		for j := 0; j < o.cols; j++ {
			d, err := m.data[i].Dot(bcols[j])
			if err != nil {
				return Dense[T, L]{}, err
			}
			row[j] = d
		}
		out.data[i] = vector.New[T, L](row)
	}
	return out, nil
}

// MulVec returns the matrix-vector product m·v as a packed vector, or
// ErrShapeMismatch when v's length differs from the column count.
func (m Dense[T, L]) MulVec(v vector.Packed[T, L]) (vector.Packed[T, L], error) {
	if v.Len() != m.cols {
		return vector.Packed[T, L]{}, &ErrShapeMismatch{Op: "mulvec", Ar: m.rows, Ac: m.cols, Br: v.Len(), Bc: 1}
	}
	out := make([]T, m.rows)
	for i, row := range m.data {
		d, err := row.Dot(v)
		if err != nil {
			return vector.Packed[T, L]{}, err
		}
		out[i] = d
	}
	return vector.New[T, L](out), nil
}

// Transpose returns the c by r matrix whose rows are m's columns.
func (m Dense[T, L]) Transpose() Dense[T, L] {
	out := Dense[T, L]{rows: m.cols, cols: m.rows, data: make([]vector.Packed[T, L], m.cols)}
	for j := 0; j < m.cols; j++ {
		col, err := m.Col(j)
		if err != nil {
			panic(err) // j ranges over m.cols
		}
		out.data[j] = col
	}
	return out
}

// FrobeniusNorm returns the square root of the sum of squared elements.
func (m Dense[T, L]) FrobeniusNorm() T {
	var total T
	for _, row := range m.data {
		total += row.PowInt(2).Sum()
	}
	var z L
	return z.Sqrt(total)
}

// MaxAbs returns the largest absolute element value, or zero for an
// empty matrix.
func (m Dense[T, L]) MaxAbs() T {
	var best T
	for _, row := range m.data {
		if v := row.Abs().Max(); v > best {
			best = v
		}
	}
	return best
}
