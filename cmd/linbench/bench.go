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
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		cfgPath     string
		sizes       []int
		matrixSizes []int
		dtypes      []string
		ops         []string
		seed        int64
		iterations  int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time packed operations against vek and naive baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := DefaultSuite()
			if cfgPath != "" {
				loaded, err := LoadSuite(cfgPath)
				if err != nil {
					return err
				}
				suite = loaded
			}
			if cmd.Flags().Changed("sizes") {
				suite.Sizes = sizes
			}
			if cmd.Flags().Changed("matrix-sizes") {
				suite.MatrixSizes = matrixSizes
			}
			if cmd.Flags().Changed("dtypes") {
				suite.Dtypes = dtypes
			}
			if cmd.Flags().Changed("ops") {
				suite.Ops = ops
			}
			if cmd.Flags().Changed("seed") {
				suite.Seed = seed
			}
			if cmd.Flags().Changed("iterations") {
				suite.Iterations = iterations
			}
			if err := suite.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			log.Info("starting suite",
				"sizes", suite.Sizes,
				"matrix_sizes", suite.MatrixSizes,
				"dtypes", suite.Dtypes,
				"ops", suite.Ops,
				"iterations", suite.Iterations,
				"seed", suite.Seed,
			)
			results := NewRunner(suite, log).Run()
			log.Info("suite finished", "results", len(results))

			PrintResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML suite file (flags override its fields)")
	cmd.Flags().IntSliceVar(&sizes, "sizes", DefaultSuite().Sizes, "vector lengths to measure")
	cmd.Flags().IntSliceVar(&matrixSizes, "matrix-sizes", DefaultSuite().MatrixSizes, "square matrix dimensions to measure")
	cmd.Flags().StringSliceVar(&dtypes, "dtypes", DefaultSuite().Dtypes, "datatypes: f32, f64")
	cmd.Flags().StringSliceVar(&ops, "ops", DefaultSuite().Ops, "operations to measure")
	cmd.Flags().Int64Var(&seed, "seed", DefaultSuite().Seed, "seed for input generation")
	cmd.Flags().IntVar(&iterations, "iterations", DefaultSuite().Iterations, "repetitions per timing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
