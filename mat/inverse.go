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

// Inverse returns the matrix inverse, solving m·x = e over one shared
// factorization for every identity column e. Fails with ErrNotSquare for
// rectangular matrices and ErrSingular when no inverse exists.
func (m Dense[T, L]) Inverse() (Dense[T, L], error) {
	low, up, perm, _, err := m.luFactor()
	if err != nil {
		return Dense[T, L]{}, err
	}
	n := m.rows
	cols := make([][]T, n)
	e := make([]T, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		cols[j] = luSolve(low, up, perm, e)
		e[j] = 0
	}
	rows := make([][]T, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]T, n)
		for j := 0; j < n; j++ {
			rows[i][j] = cols[j][i]
		}
	}
	return fromScalarRows[T, L](rows), nil
}
