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

import (
	"errors"

	"github.com/yeswadams/ml-linalg/lane"
	"github.com/yeswadams/ml-linalg/vector"
)

// at reads a known-in-range element of a packed row.
func at[T lane.Floats, L lane.Ops[L, T]](v vector.Packed[T, L], i int) T {
	x, err := v.At(i)
	if err != nil {
		panic(err) // index is in range by construction
	}
	return x
}

// luFactor runs Doolittle elimination with partial pivoting. Row updates
// are packed vector operations; only element reads are scalar. It
// returns the unitriangular multipliers, the upper triangle, the row
// permutation, and the transposition count.
func (m Dense[T, L]) luFactor() (low, up [][]T, perm []int, swaps int, err error) {
	if m.rows != m.cols {
		return nil, nil, nil, 0, &ErrNotSquare{Rows: m.rows, Cols: m.cols}
	}
	n := m.rows
	u := make([]vector.Packed[T, L], n)
	copy(u, m.data)
	low = make([][]T, n)
	for i := range low {
		low[i] = make([]T, n)
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		p := k
		best := at(u[k], k)
		if best < 0 {
			best = -best
		}
		for i := k + 1; i < n; i++ {
			a := at(u[i], k)
			if a < 0 {
				a = -a
			}
			if a > best {
				p, best = i, a
			}
		}
		if best == 0 {
			return nil, nil, nil, 0, &ErrSingular{Col: k}
		}
		if p != k {
			u[p], u[k] = u[k], u[p]
			low[p], low[k] = low[k], low[p]
			perm[p], perm[k] = perm[k], perm[p]
			swaps++
		}

		pivot := at(u[k], k)
		low[k][k] = 1
		for i := k + 1; i < n; i++ {
			f := at(u[i], k) / pivot
			if f == 0 {
				continue
			}
			low[i][k] = f
			next, serr := u[i].Sub(u[k].MulScalar(f))
			if serr != nil {
				return nil, nil, nil, 0, serr
			}
			u[i] = next
		}
	}

	up = make([][]T, n)
	for i := range up {
		row := u[i].ToSlice()
		// Elimination cancels these positions only up to rounding;
		// the triangle is exact by definition.
		for j := 0; j < i; j++ {
			row[j] = 0
		}
		up[i] = row
	}
	return low, up, perm, swaps, nil
}

func fromScalarRows[T lane.Floats, L lane.Ops[L, T]](rows [][]T) Dense[T, L] {
	m := Dense[T, L]{rows: len(rows), data: make([]vector.Packed[T, L], len(rows))}
	if len(rows) > 0 {
		m.cols = len(rows[0])
	}
	for i, r := range rows {
		m.data[i] = vector.New[T, L](r)
	}
	return m
}

// LU returns the Doolittle factorization with partial pivoting: a
// unitriangular lower factor, an upper triangle, and the row permutation
// applied, with swaps counting its transpositions. Row perm[i] of m lands
// at row i, and the permuted matrix equals lower·upper. Fails with
// ErrNotSquare for rectangular matrices and ErrSingular when a pivot
// column is exactly zero from the diagonal down; no epsilon threshold is
// applied, so nearly singular inputs factor with tiny pivots instead.
func (m Dense[T, L]) LU() (lower, upper Dense[T, L], perm []int, swaps int, err error) {
	low, up, perm, swaps, err := m.luFactor()
	if err != nil {
		return Dense[T, L]{}, Dense[T, L]{}, nil, 0, err
	}
	return fromScalarRows[T, L](low), fromScalarRows[T, L](up), perm, swaps, nil
}

// Det returns the determinant: the product of the upper-triangle
// diagonal, negated for an odd number of row transpositions. A matrix
// LU reports singular has determinant zero, which is a value here, not
// an error. Fails with ErrNotSquare for rectangular matrices.
func (m Dense[T, L]) Det() (T, error) {
	_, up, _, swaps, err := m.luFactor()
	if err != nil {
		var sing *ErrSingular
		if errors.As(err, &sing) {
			return 0, nil
		}
		var zero T
		return zero, err
	}
	det := T(1)
	for i := range up {
		det *= up[i][i]
	}
	if swaps%2 == 1 {
		det = -det
	}
	return det, nil
}

// Solve returns the vector x with m·x = b. Fails with ErrShapeMismatch
// when b's length differs from the row count; ErrNotSquare and
// ErrSingular propagate from factorization.
func (m Dense[T, L]) Solve(b vector.Packed[T, L]) (vector.Packed[T, L], error) {
	if b.Len() != m.rows {
		return vector.Packed[T, L]{}, &ErrShapeMismatch{Op: "solve", Ar: m.rows, Ac: m.cols, Br: b.Len(), Bc: 1}
	}
	low, up, perm, _, err := m.luFactor()
	if err != nil {
		return vector.Packed[T, L]{}, err
	}
	return vector.New[T, L](luSolve(low, up, perm, b.ToSlice())), nil
}

// luSolve applies the row permutation to b, then forward substitution
// through the unitriangular factor and back substitution through the
// upper triangle.
func luSolve[T lane.Floats](low, up [][]T, perm []int, b []T) []T {
	n := len(low)
	y := make([]T, n)
	for i := 0; i < n; i++ {
		s := b[perm[i]]
		for j := 0; j < i; j++ {
			s -= low[i][j] * y[j]
		}
		y[i] = s
	}
	x := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for j := i + 1; j < n; j++ {
			s -= up[i][j] * x[j]
		}
		x[i] = s / up[i][i]
	}
	return x
}
