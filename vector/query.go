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

// Gather builds a new vector from the elements at the given indexes, in
// the given order. Duplicates are allowed. Fails with ErrIndexOutOfRange
// on the first index outside [0, Len).
func (p Packed[T, L]) Gather(indexes []int) (Packed[T, L], error) {
	out := make([]T, len(indexes))
	for i, idx := range indexes {
		v, err := p.At(idx)
		if err != nil {
			return Packed[T, L]{}, err
		}
		out[i] = v
	}
	return New[T, L](out), nil
}

// Unique returns the distinct elements in first-occurrence order. The
// scan is quadratic; keep inputs modest. Equality is Go float equality,
// so every NaN is distinct and +0 equals -0.
func (p Packed[T, L]) Unique() Packed[T, L] {
	vals := p.ToSlice()
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		found := false
		for _, u := range out {
			if u == v {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return New[T, L](out)
}
