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
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Suite configures one benchmark run. Values come from a YAML file, and
// command-line flags override individual fields. The core library takes
// no configuration; everything here shapes only the harness.
type Suite struct {
	// Sizes are vector lengths, including non-multiples of the lane
	// width to keep the residual path in the measurement.
	Sizes []int `yaml:"sizes"`
	// MatrixSizes are square matrix dimensions for matmul, lu, and
	// inverse. These scale cubically, so keep them modest.
	MatrixSizes []int    `yaml:"matrix_sizes"`
	Dtypes      []string `yaml:"dtypes"`
	Seed        int64    `yaml:"seed"`
	Iterations  int      `yaml:"iterations"`
	Ops         []string `yaml:"ops"`
}

var (
	knownDtypes = []string{"f32", "f64"}
	knownOps    = []string{"add", "sum", "dot", "norm", "matmul", "lu", "inverse"}
)

// DefaultSuite returns the configuration used when no file or flags are
// given.
func DefaultSuite() Suite {
	return Suite{
		Sizes:       []int{128, 1023, 4096},
		MatrixSizes: []int{16, 64, 128},
		Dtypes:      []string{"f32", "f64"},
		Seed:        1,
		Iterations:  1000,
		Ops:         slices.Clone(knownOps),
	}
}

// LoadSuite reads a YAML suite file over the defaults and validates the
// result.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}
	s := DefaultSuite()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parse suite %s: %w", path, err)
	}
	return s, s.Validate()
}

// Validate rejects empty or unknown suite entries.
func (s Suite) Validate() error {
	if len(s.Sizes) == 0 && len(s.MatrixSizes) == 0 {
		return fmt.Errorf("suite: no sizes configured")
	}
	for _, n := range s.Sizes {
		if n <= 0 {
			return fmt.Errorf("suite: size %d must be positive", n)
		}
	}
	for _, n := range s.MatrixSizes {
		if n <= 0 {
			return fmt.Errorf("suite: matrix size %d must be positive", n)
		}
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("suite: iterations %d must be positive", s.Iterations)
	}
	for _, d := range s.Dtypes {
		if !slices.Contains(knownDtypes, d) {
			return fmt.Errorf("suite: unknown dtype %q (want f32 or f64)", d)
		}
	}
	for _, op := range s.Ops {
		if !slices.Contains(knownOps, op) {
			return fmt.Errorf("suite: unknown op %q", op)
		}
	}
	return nil
}
