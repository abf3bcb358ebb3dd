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

// NormKind selects the norm computed by Norm and Distance.
type NormKind int

const (
	// Euclidean is the L2 norm: sqrt of the sum of squares.
	Euclidean NormKind = iota
	// Manhattan is the L1 norm: sum of absolute values.
	Manhattan
)

// String returns the lowercase name of the norm kind.
func (k NormKind) String() string {
	switch k {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// Sum returns the total of all elements. Full lanes fold into an
// accumulator seeded with the residual lane (or zeros), then the
// accumulator reduces horizontally. NaN elements contribute zero to the
// horizontal step; that policy is part of the contract, not an accident
// to repair.
func (p Packed[T, L]) Sum() T {
	var acc L
	if p.residual != nil {
		acc = *p.residual
	}
	for _, l := range p.lanes {
		acc = acc.Add(l)
	}
	return acc.Sum()
}

// Dot returns the inner product of two vectors of equal length, or
// ErrLengthMismatch.
func (p Packed[T, L]) Dot(o Packed[T, L]) (T, error) {
	prod, err := p.Mul(o)
	if err != nil {
		var zero T
		return zero, err
	}
	return prod.Sum(), nil
}

// Mean returns Sum divided by the length. An empty vector yields NaN per
// IEEE division, not an error.
func (p Packed[T, L]) Mean() T {
	return p.Sum() / T(p.length)
}

// Norm returns the vector norm of the given kind, or ErrUnsupportedNorm
// for a kind it does not implement.
func (p Packed[T, L]) Norm(kind NormKind) (T, error) {
	switch kind {
	case Euclidean:
		var z L
		return z.Sqrt(p.PowInt(2).Sum()), nil
	case Manhattan:
		return p.Abs().Sum(), nil
	default:
		var zero T
		return zero, &ErrUnsupportedNorm{Kind: kind}
	}
}

// Distance returns the norm of the elementwise difference of two vectors
// of equal length. ErrLengthMismatch and ErrUnsupportedNorm propagate.
func (p Packed[T, L]) Distance(o Packed[T, L], kind NormKind) (T, error) {
	diff, err := p.Sub(o)
	if err != nil {
		var zero T
		return zero, err
	}
	return diff.Norm(kind)
}

// Max returns the largest element. Only the occupied residual positions
// take part, so zero padding never wins over all-negative data. An empty
// vector returns the zero value.
func (p Packed[T, L]) Max() T {
	return p.extremum(
		func(a, b L) L { return a.Max(b) },
		func(a, b T) bool { return a > b },
	)
}

// Min returns the smallest element under the same rules as Max.
func (p Packed[T, L]) Min() T {
	return p.extremum(
		func(a, b L) L { return a.Min(b) },
		func(a, b T) bool { return a < b },
	)
}

// extremum folds full lanes with sel, reduces the folded lane
// horizontally with better, then folds in the occupied residual
// positions one by one.
func (p Packed[T, L]) extremum(sel func(L, L) L, better func(T, T) bool) T {
	var best T
	if p.length == 0 {
		return best
	}
	seen := false
	if len(p.lanes) > 0 {
		acc := p.lanes[0]
		for _, l := range p.lanes[1:] {
			acc = sel(acc, l)
		}
		best = acc.Extract(0)
		for i := 1; i < p.width(); i++ {
			if v := acc.Extract(i); better(v, best) {
				best = v
			}
		}
		seen = true
	}
	if p.residual != nil {
		for i := 0; i < p.length%p.width(); i++ {
			if v := (*p.residual).Extract(i); !seen || better(v, best) {
				best = v
				seen = true
			}
		}
	}
	return best
}
