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

package lane

import (
	"fmt"
	"math"
)

// Width64 is the number of float64 positions in a 128-bit lane.
const Width64 = 2

// F64x2 is a 128-bit lane of two float64 values.
type F64x2 [Width64]float64

// Width returns 2.
func (F64x2) Width() int { return Width64 }

// Splat builds a lane with both positions set to v.
func (F64x2) Splat(v float64) F64x2 {
	return F64x2{v, v}
}

// Load builds a lane from up to two scalars, zero-filling the rest.
func (F64x2) Load(src []float64) F64x2 {
	var l F64x2
	copy(l[:], src)
	return l
}

// Add returns the elementwise sum.
func (l F64x2) Add(o F64x2) F64x2 {
	return F64x2{l[0] + o[0], l[1] + o[1]}
}

// Sub returns the elementwise difference.
func (l F64x2) Sub(o F64x2) F64x2 {
	return F64x2{l[0] - o[0], l[1] - o[1]}
}

// Mul returns the elementwise product.
func (l F64x2) Mul(o F64x2) F64x2 {
	return F64x2{l[0] * o[0], l[1] * o[1]}
}

// Div returns the elementwise quotient, with IEEE 754 semantics for
// division by zero.
func (l F64x2) Div(o F64x2) F64x2 {
	return F64x2{l[0] / o[0], l[1] / o[1]}
}

// Abs returns the lane with both positions replaced by their absolute
// values.
func (l F64x2) Abs() F64x2 {
	return F64x2{math.Abs(l[0]), math.Abs(l[1])}
}

// Min selects the smaller value per position. Comparisons involving NaN
// are false, so the right operand wins at NaN positions.
func (l F64x2) Min(o F64x2) F64x2 {
	var out F64x2
	for i := range l {
		if l[i] < o[i] {
			out[i] = l[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// Max selects the greater value per position.
func (l F64x2) Max(o F64x2) F64x2 {
	var out F64x2
	for i := range l {
		if l[i] > o[i] {
			out[i] = l[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// Sum reduces the lane horizontally. NaN positions contribute zero.
func (l F64x2) Sum() float64 {
	var s float64
	for _, v := range l {
		if !math.IsNaN(v) {
			s += v
		}
	}
	return s
}

// Slice returns the two positions as a fresh slice.
func (l F64x2) Slice() []float64 {
	return l[:]
}

// Extract returns the scalar at position i, panicking when i is outside
// [0, 2).
func (l F64x2) Extract(i int) float64 {
	if i < 0 || i >= Width64 {
		panic(fmt.Sprintf("lane: extract offset %d out of range [0,%d)", i, Width64))
	}
	return l[i]
}

// Sqrt returns the square root of v.
func (F64x2) Sqrt(v float64) float64 {
	return math.Sqrt(v)
}
