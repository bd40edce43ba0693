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

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/x12stream/x12parse/internal/json"
	"github.com/x12stream/x12parse/report"
	"github.com/x12stream/x12parse/x12"
	"github.com/x12stream/x12parse/x12/host"
	"github.com/x12stream/x12parse/x12/validate"
)

var validateRules []string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse and validate a file, emitting a JSON report",
	Long: "Parses the file through the full validation suite and prints a JSON " +
		"report. Exits non-zero if any validation error was found.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()

		suite, err := validate.NewSuiteFromConfig(validate.Config{Rules: validateRules})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build validator suite: %v\n", err)
			os.Exit(1)
		}

		var lastCtrl string
		handler := x12.HandlerFunc(func(seg *x12.Segment) error {
			if seg.ID() == "ISA" && seg.ElementCount() > 12 {
				lastCtrl = seg.Element(12).String()
			}
			return suite.Handle(seg)
		})

		drv := host.New(host.DefaultConfig())
		stats, runErr := drv.Run(f, handler)

		rep := report.ParseReport{
			Stats:           stats,
			Errors:          suite.Errors(),
			InterchangeCtrl: lastCtrl,
		}

		b, err := json.Marshal(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(b))

		if runErr != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", runErr)
			os.Exit(1)
		}
		if len(rep.Errors) > 0 {
			var merr *multierror.Error
			for _, e := range rep.Errors {
				merr = multierror.Append(merr, e)
			}
			fmt.Fprintln(os.Stderr, merr)
			os.Exit(1)
		}
	},
	Example: "# x12parse validate claim.edi",
}

func init() {
	validateCmd.Flags().StringSliceVar(&validateRules, "rule", []string{"envelope_integrity", "control_reconciliation"},
		"Validation rules to run, by registered name")
	rootCmd.AddCommand(validateCmd)
}
