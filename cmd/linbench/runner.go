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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"github.com/chewxy/math32"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/yeswadams/ml-linalg/mat"
	"github.com/yeswadams/ml-linalg/vector"
)

// Result is one timed variant of one operation.
type Result struct {
	Op      string
	Dtype   string
	Size    int
	Variant string
	NsPerOp float64
}

// Runner times the suite's operations as packed implementations next to
// vek SIMD kernels and naive scalar loops.
type Runner struct {
	suite Suite
	log   *slog.Logger
}

// NewRunner builds a runner over a validated suite.
func NewRunner(suite Suite, log *slog.Logger) *Runner {
	return &Runner{suite: suite, log: log}
}

// Run executes the whole suite and returns one Result per timed variant.
func (r *Runner) Run() []Result {
	var out []Result
	for _, op := range r.suite.Ops {
		for _, dtype := range r.suite.Dtypes {
			switch op {
			case "add", "sum", "dot", "norm":
				for _, size := range r.suite.Sizes {
					out = append(out, r.vectorOp(op, dtype, size)...)
				}
			default:
				for _, n := range r.suite.MatrixSizes {
					out = append(out, r.matrixOp(op, dtype, n)...)
				}
			}
		}
	}
	return out
}

func timeIt(iters int, f func()) float64 {
	start := time.Now()
	for i := 0; i < iters; i++ {
		f()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func (r *Runner) vectorOp(op, dtype string, size int) []Result {
	r.log.Debug("bench vector op", "op", op, "dtype", dtype, "size", size)
	iters := r.suite.Iterations
	mk := func(variant string, f func()) Result {
		return Result{Op: op, Dtype: dtype, Size: size, Variant: variant, NsPerOp: timeIt(iters, f)}
	}

	if dtype == "f32" {
		v := vector.Random32(size, r.suite.Seed)
		w := vector.Random32(size, r.suite.Seed+1)
		a, b := v.ToSlice(), w.ToSlice()
		switch op {
		case "add":
			return []Result{
				mk("packed", func() { _, _ = v.Add(w) }),
				mk("naive", func() { _ = naiveAdd32(a, b) }),
			}
		case "sum":
			return []Result{
				mk("packed", func() { _ = v.Sum() }),
				mk("vek32", func() { _ = vek32.Sum(a) }),
				mk("naive", func() { _ = naiveSum32(a) }),
			}
		case "dot":
			return []Result{
				mk("packed", func() { _, _ = v.Dot(w) }),
				mk("vek32", func() { _ = vek32.Dot(a, b) }),
				mk("naive", func() { _ = naiveDot32(a, b) }),
			}
		case "norm":
			return []Result{
				mk("packed", func() { _, _ = v.Norm(vector.Euclidean) }),
				mk("vek32", func() { _ = vek32.Norm(a) }),
				mk("naive", func() { _ = naiveNorm32(a) }),
			}
		}
		return nil
	}

	v := vector.Random64(size, r.suite.Seed)
	w := vector.Random64(size, r.suite.Seed+1)
	a, b := v.ToSlice(), w.ToSlice()
	switch op {
	case "add":
		return []Result{
			mk("packed", func() { _, _ = v.Add(w) }),
			mk("naive", func() { _ = naiveAdd64(a, b) }),
		}
	case "sum":
		return []Result{
			mk("packed", func() { _ = v.Sum() }),
			mk("vek", func() { _ = vek.Sum(a) }),
			mk("naive", func() { _ = naiveSum64(a) }),
		}
	case "dot":
		return []Result{
			mk("packed", func() { _, _ = v.Dot(w) }),
			mk("vek", func() { _ = vek.Dot(a, b) }),
			mk("naive", func() { _ = naiveDot64(a, b) }),
		}
	case "norm":
		return []Result{
			mk("packed", func() { _, _ = v.Norm(vector.Euclidean) }),
			mk("vek", func() { _ = vek.Norm(a) }),
			mk("naive", func() { _ = naiveNorm64(a) }),
		}
	}
	return nil
}

func (r *Runner) matrixOp(op, dtype string, n int) []Result {
	r.log.Debug("bench matrix op", "op", op, "dtype", dtype, "size", n)
	iters := r.suite.Iterations
	// Cubic work; cap repetitions to keep wall time in check.
	if iters > 50 {
		iters = 50
	}
	mk := func(variant string, f func()) Result {
		return Result{Op: op, Dtype: dtype, Size: n, Variant: variant, NsPerOp: timeIt(iters, f)}
	}

	if dtype == "f32" {
		m := mat.Random32(n, n, r.suite.Seed)
		o := mat.Random32(n, n, r.suite.Seed+1)
		switch op {
		case "matmul":
			am, bm := m.ToSlices(), o.ToSlices()
			return []Result{
				mk("packed", func() { _, _ = m.Mul(o) }),
				mk("naive", func() { _ = naiveMatMul32(am, bm) }),
			}
		case "lu":
			return []Result{mk("packed", func() { _, _, _, _, _ = m.LU() })}
		case "inverse":
			return []Result{mk("packed", func() { _, _ = m.Inverse() })}
		}
		return nil
	}

	m := mat.Random64(n, n, r.suite.Seed)
	o := mat.Random64(n, n, r.suite.Seed+1)
	switch op {
	case "matmul":
		am, bm := m.ToSlices(), o.ToSlices()
		return []Result{
			mk("packed", func() { _, _ = m.Mul(o) }),
			mk("naive", func() { _ = naiveMatMul64(am, bm) }),
		}
	case "lu":
		return []Result{mk("packed", func() { _, _, _, _, _ = m.LU() })}
	case "inverse":
		return []Result{mk("packed", func() { _, _ = m.Inverse() })}
	}
	return nil
}

// PrintResults renders an aligned table of timings.
func PrintResults(w io.Writer, results []Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tDTYPE\tSIZE\tVARIANT\tNS/OP")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.1f\n", res.Op, res.Dtype, res.Size, res.Variant, res.NsPerOp)
	}
	tw.Flush()
}

func naiveAdd32(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func naiveSum32(a []float32) float32 {
	var s float32
	for _, v := range a {
		s += v
	}
	return s
}

func naiveDot32(a, b []float32) float32 {
	var s float32
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func naiveNorm32(a []float32) float32 {
	var s float32
	for _, v := range a {
		s += v * v
	}
	return math32.Sqrt(s)
}

func naiveAdd64(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func naiveSum64(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v
	}
	return s
}

func naiveDot64(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func naiveNorm64(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}

func naiveMatMul32(a, b [][]float32) [][]float32 {
	rows, inner := len(a), len(b)
	cols := 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]float32, rows)
	for i := range out {
		out[i] = make([]float32, cols)
		for k := 0; k < inner; k++ {
			aik := a[i][k]
			for j := 0; j < cols; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}

func naiveMatMul64(a, b [][]float64) [][]float64 {
	rows, inner := len(a), len(b)
	cols := 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			aik := a[i][k]
			for j := 0; j < cols; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}
