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

package vector

import "github.com/yeswadams/ml-linalg/lane"

// binary applies op lane by lane over two vectors of equal length.
func (p Packed[T, L]) binary(o Packed[T, L], op func(L, L) L) (Packed[T, L], error) {
	if p.length != o.length {
		return Packed[T, L]{}, &ErrLengthMismatch{Left: p.length, Right: o.length}
	}
	out := Packed[T, L]{length: p.length}
	if len(p.lanes) > 0 {
		out.lanes = make([]L, len(p.lanes))
		for i := range p.lanes {
			out.lanes[i] = op(p.lanes[i], o.lanes[i])
		}
	}
	if p.residual != nil {
		r := rezero[T, L](op(*p.residual, *o.residual), p.length%p.width())
		out.residual = &r
	}
	return out, nil
}

// scalar applies op with Splat(v) as the right operand of every lane.
func (p Packed[T, L]) scalar(v T, op func(L, L) L) Packed[T, L] {
	var z L
	s := z.Splat(v)
	out := Packed[T, L]{length: p.length}
	if len(p.lanes) > 0 {
		out.lanes = make([]L, len(p.lanes))
		for i := range p.lanes {
			out.lanes[i] = op(p.lanes[i], s)
		}
	}
	if p.residual != nil {
		r := rezero[T, L](op(*p.residual, s), p.length%p.width())
		out.residual = &r
	}
	return out
}

// unary applies op to every lane.
func (p Packed[T, L]) unary(op func(L) L) Packed[T, L] {
	out := Packed[T, L]{length: p.length}
	if len(p.lanes) > 0 {
		out.lanes = make([]L, len(p.lanes))
		for i := range p.lanes {
			out.lanes[i] = op(p.lanes[i])
		}
	}
	if p.residual != nil {
		r := rezero[T, L](op(*p.residual), p.length%p.width())
		out.residual = &r
	}
	return out
}

// Add returns the elementwise sum of two vectors of equal length, or
// ErrLengthMismatch.
func (p Packed[T, L]) Add(o Packed[T, L]) (Packed[T, L], error) {
	return p.binary(o, func(a, b L) L { return a.Add(b) })
}

// Sub returns the elementwise difference, or ErrLengthMismatch.
func (p Packed[T, L]) Sub(o Packed[T, L]) (Packed[T, L], error) {
	return p.binary(o, func(a, b L) L { return a.Sub(b) })
}

// Mul returns the elementwise product, or ErrLengthMismatch.
func (p Packed[T, L]) Mul(o Packed[T, L]) (Packed[T, L], error) {
	return p.binary(o, func(a, b L) L { return a.Mul(b) })
}

// Div returns the elementwise quotient, or ErrLengthMismatch. Division by
// zero follows IEEE 754 semantics and is never an error.
func (p Packed[T, L]) Div(o Packed[T, L]) (Packed[T, L], error) {
	return p.binary(o, func(a, b L) L { return a.Div(b) })
}

// AddScalar adds v to every element.
func (p Packed[T, L]) AddScalar(v T) Packed[T, L] {
	return p.scalar(v, func(a, b L) L { return a.Add(b) })
}

// SubScalar subtracts v from every element.
func (p Packed[T, L]) SubScalar(v T) Packed[T, L] {
	return p.scalar(v, func(a, b L) L { return a.Sub(b) })
}

// MulScalar multiplies every element by v.
func (p Packed[T, L]) MulScalar(v T) Packed[T, L] {
	return p.scalar(v, func(a, b L) L { return a.Mul(b) })
}

// DivScalar divides every element by v, with IEEE 754 semantics when v is
// zero.
func (p Packed[T, L]) DivScalar(v T) Packed[T, L] {
	return p.scalar(v, func(a, b L) L { return a.Div(b) })
}

// Abs returns the elementwise absolute value.
func (p Packed[T, L]) Abs() Packed[T, L] {
	return p.unary(func(l L) L { return l.Abs() })
}

// PowInt raises every element to the integer power n using lane-level
// fast exponentiation: O(log n) lane multiplies per lane instead of n.
// n = 0 yields a vector of ones, including at zero elements (pow(0,0)=1).
// Negative n computes the reciprocal of the positive power, so zero
// elements become +Inf under IEEE semantics rather than an error.
func (p Packed[T, L]) PowInt(n int) Packed[T, L] {
	if n < 0 {
		var z L
		one := z.Splat(1)
		return p.unary(func(l L) L { return one.Div(powLane[T, L](l, -n)) })
	}
	return p.unary(func(l L) L { return powLane[T, L](l, n) })
}

// powLane raises l elementwise to the non-negative power n by squaring.
func powLane[T lane.Floats, L lane.Ops[L, T]](l L, n int) L {
	if n == 0 {
		var z L
		return z.Splat(1)
	}
	half := powLane[T, L](l, n/2)
	sq := half.Mul(half)
	if n%2 != 0 {
		return l.Mul(sq)
	}
	return sq
}
