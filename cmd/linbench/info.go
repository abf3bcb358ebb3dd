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
	"runtime"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/yeswadams/ml-linalg/lane"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print lane and SIMD acceleration details",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "lane level: %s (accelerated: %v)\n", lane.Name(), lane.Accelerated())
			fmt.Fprintf(out, "lane bytes: %d (float32 x%d, float64 x%d)\n",
				lane.LaneBytes, lane.MaxLanes[float32](), lane.MaxLanes[float64]())

			info := vek32.Info()
			fmt.Fprintf(out, "vek:        acceleration=%v features=%v\n", info.Acceleration, info.CPUFeatures)
		},
	}
}
