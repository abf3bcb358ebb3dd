package lane

import "unsafe"

// Level identifies the SIMD instruction family detected on the host at
// startup. Lane arithmetic itself is portable Go and runs identically at
// every level; the level reports whether the compiler has native 128-bit
// registers to keep lanes in.
type Level int

const (
	// LevelScalar means no recognized SIMD family; lanes are computed
	// position by position.
	LevelScalar Level = iota
	// LevelSSE2 is the amd64 baseline: 128-bit XMM registers.
	LevelSSE2
	// LevelAVX2 adds 256-bit registers and FMA on amd64.
	LevelAVX2
	// LevelNEON is the arm64 128-bit ASIMD family.
	LevelNEON
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// LaneBytes is the size of every lane type in bytes. Lanes are fixed at
// 128 bits on all hosts; detection never changes their shape.
const LaneBytes = 16

var currentLevel Level

// CurrentLevel returns the SIMD family detected at startup.
func CurrentLevel() Level { return currentLevel }

// Name returns the lowercase name of the detected family.
func Name() string { return currentLevel.String() }

// Accelerated reports whether the host maps 128-bit lanes onto native
// SIMD registers.
func Accelerated() bool { return currentLevel > LevelScalar }

// MaxLanes returns how many T scalars fit in one lane: 4 for float32,
// 2 for float64.
func MaxLanes[T Floats]() int {
	var zero T
	return int(LaneBytes / unsafe.Sizeof(zero))
}
