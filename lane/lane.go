// Package lane provides fixed-width SIMD lane types and the per-datatype
// operation providers built on them.
//
// A lane is a 128-bit register value holding a small fixed group of scalars:
// four float32 values (F32x4) or two float64 values (F64x2). All arithmetic
// on a lane is elementwise across its positions, mirroring what one SIMD
// instruction does in hardware. The lane types are plain fixed-size arrays,
// so the compiler is free to keep them in vector registers and auto-vectorize
// the unrolled position-by-position bodies.
//
// The Ops constraint describes the full operation protocol a lane type
// provides. Generic containers such as vector.Packed take a lane type as a
// type parameter bound by Ops, which monomorphizes every lane operation at
// compile time: there is no interface dispatch in the hot path, and the
// container algorithm is written once for both precisions.
//
// Basic usage:
//
//	var z lane.F32x4
//	a := z.Load([]float32{1, 2, 3, 4})
//	b := z.Splat(10)
//	sum := a.Add(b).Sum() // 50
package lane

// Floats is a constraint for the scalar datatypes lanes can hold.
type Floats interface {
	~float32 | ~float64
}

// Ops is the operation protocol of a lane type: the per-datatype provider
// for lane construction, elementwise arithmetic, and horizontal reductions.
// It is self-referential: a lane type L satisfies Ops[L, T] with methods
// operating on and returning L values.
//
// Construction methods (Splat, Load) ignore the receiver and may be called
// on the zero value. All methods are pure: no lane is ever modified in
// place, every operation returns a fresh value.
type Ops[L any, T Floats] interface {
	// Width returns the number of scalar positions in the lane:
	// 4 for float32 lanes, 2 for float64 lanes.
	Width() int

	// Splat builds a lane with every position set to v.
	Splat(v T) L

	// Load builds a lane from up to Width scalars, zero-filling the
	// positions src does not cover.
	Load(src []T) L

	// Elementwise arithmetic. Division by zero follows IEEE 754 float
	// semantics (Inf or NaN, never an error).
	Add(o L) L
	Sub(o L) L
	Mul(o L) L
	Div(o L) L

	// Abs returns the lane with every position replaced by its absolute
	// value.
	Abs() L

	// Min and Max select the smaller/greater value per position.
	Min(o L) L
	Max(o L) L

	// Sum reduces the lane horizontally: the sum of all positions.
	// NaN positions contribute zero. That rule is a defined policy, not
	// an accident: a residual lane whose unused tail turned NaN under
	// lane arithmetic must not poison a whole-vector total.
	Sum() T

	// Slice returns the lane positions as a fresh slice of length Width.
	Slice() []T

	// Extract returns the scalar at position i. It panics when i is
	// outside [0, Width); callers are expected to have validated the
	// offset, so an out-of-range panic here is a defect, not input error.
	Extract(i int) T

	// Sqrt returns the square root of the scalar v in the lane's native
	// precision. It lives on the provider so that float32 math never
	// round-trips through float64.
	Sqrt(v T) T
}
