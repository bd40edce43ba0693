// Copyright 2026 The x12stream Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/x12stream/x12parse/x12"
	"github.com/x12stream/x12parse/x12/host"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print each segment identifier as it's delivered",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()

		var count int
		handler := x12.HandlerFunc(func(seg *x12.Segment) error {
			count++
			fmt.Printf("%4d  %s (%d elements)\n", count, seg.ID(), seg.ElementCount())
			return nil
		})

		drv := host.New(host.DefaultConfig())
		stats, err := drv.Run(f, handler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse failed after %d segments: %v\n", count, err)
			os.Exit(1)
		}
		fmt.Printf("done: %d bytes read, %d segments delivered\n", stats.BytesRead, stats.SegmentsDelivered)
	},
	Example: "# x12parse parse claim.edi",
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
