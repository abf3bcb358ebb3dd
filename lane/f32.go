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

	"github.com/chewxy/math32"
)

// Width32 is the number of float32 positions in a 128-bit lane.
const Width32 = 4

// F32x4 is a 128-bit lane of four float32 values.
type F32x4 [Width32]float32

// Width returns 4.
func (F32x4) Width() int { return Width32 }

// Splat builds a lane with every position set to v.
func (F32x4) Splat(v float32) F32x4 {
	return F32x4{v, v, v, v}
}

// Load builds a lane from up to four scalars, zero-filling the rest.
func (F32x4) Load(src []float32) F32x4 {
	var l F32x4
	copy(l[:], src)
	return l
}

// Add returns the elementwise sum.
func (l F32x4) Add(o F32x4) F32x4 {
	return F32x4{l[0] + o[0], l[1] + o[1], l[2] + o[2], l[3] + o[3]}
}

// Sub returns the elementwise difference.
func (l F32x4) Sub(o F32x4) F32x4 {
	return F32x4{l[0] - o[0], l[1] - o[1], l[2] - o[2], l[3] - o[3]}
}

// Mul returns the elementwise product.
func (l F32x4) Mul(o F32x4) F32x4 {
	return F32x4{l[0] * o[0], l[1] * o[1], l[2] * o[2], l[3] * o[3]}
}

// Div returns the elementwise quotient, with IEEE 754 semantics for
// division by zero.
func (l F32x4) Div(o F32x4) F32x4 {
	return F32x4{l[0] / o[0], l[1] / o[1], l[2] / o[2], l[3] / o[3]}
}

// Abs returns the lane with every position replaced by its absolute value.
func (l F32x4) Abs() F32x4 {
	return F32x4{math32.Abs(l[0]), math32.Abs(l[1]), math32.Abs(l[2]), math32.Abs(l[3])}
}

// Min selects the smaller value per position. Comparisons involving NaN
// are false, so the right operand wins at NaN positions.
func (l F32x4) Min(o F32x4) F32x4 {
	var out F32x4
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
func (l F32x4) Max(o F32x4) F32x4 {
	var out F32x4
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
func (l F32x4) Sum() float32 {
	var s float32
	for _, v := range l {
		if !math32.IsNaN(v) {
			s += v
		}
	}
	return s
}

// Slice returns the four positions as a fresh slice.
func (l F32x4) Slice() []float32 {
	return l[:]
}

// Extract returns the scalar at position i, panicking when i is outside
// [0, 4).
func (l F32x4) Extract(i int) float32 {
	if i < 0 || i >= Width32 {
		panic(fmt.Sprintf("lane: extract offset %d out of range [0,%d)", i, Width32))
	}
	return l[i]
}

// Sqrt returns the square root of v in float32 precision.
func (F32x4) Sqrt(v float32) float32 {
	return math32.Sqrt(v)
}
