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

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation marks operations packed vectors reject by
// contract. Vectors are immutable, so in-place mutation has no API to
// reach and no function in this package returns the sentinel. It is
// exported for adapters that expose a write surface over packed vectors
// and wrap it to reject those writes, and is reserved for any future
// operation the type declines at runtime rather than at compile time.
var ErrUnsupportedOperation = errors.New("unsupported operation: packed vectors are immutable")

// ErrLengthMismatch indicates a binary operation over two vectors of
// different logical lengths, or lane material that cannot represent the
// declared length.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}

// ErrIndexOutOfRange indicates an element index outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}

// ErrUnsupportedNorm indicates a norm kind the vector does not implement.
type ErrUnsupportedNorm struct {
	Kind NormKind
}

func (e *ErrUnsupportedNorm) Error() string {
	return fmt.Sprintf("unsupported norm kind: %d", int(e.Kind))
}
