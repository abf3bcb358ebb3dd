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

import "fmt"

// ErrShapeMismatch indicates two operands whose dimensions do not fit the
// operation. Vectors render as nx1 or 1xn shapes.
type ErrShapeMismatch struct {
	Op             string
	Ar, Ac, Br, Bc int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: shape mismatch: %dx%d vs %dx%d", e.Op, e.Ar, e.Ac, e.Br, e.Bc)
}

// ErrNotSquare indicates a square-only operation applied to a rectangular
// matrix.
type ErrNotSquare struct {
	Rows int
	Cols int
}

func (e *ErrNotSquare) Error() string {
	return fmt.Sprintf("not square: %dx%d", e.Rows, e.Cols)
}

// ErrSingular indicates that LU factorization found no nonzero pivot in
// a column: the matrix has no inverse. The pivot test compares exactly
// against zero, with no epsilon threshold, so a nearly singular matrix
// factors normally and surfaces as tiny pivots rather than this error.
type ErrSingular struct {
	Col int
}

func (e *ErrSingular) Error() string {
	return fmt.Sprintf("singular matrix: no nonzero pivot in column %d", e.Col)
}
