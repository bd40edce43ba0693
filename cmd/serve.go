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
	"time"

	"github.com/spf13/cobra"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/confengine"
	"github.com/x12stream/x12parse/engine"
	"github.com/x12stream/x12parse/internal/sigs"
	"github.com/x12stream/x12parse/logger"
)

var (
	serveConfigPath string
	serveSource     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a long-lived service, driving a byte source through the parser",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := confengine.LoadConfigPath(serveConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		eng, err := engine.New(cfg, common.GetBuildInfo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
			os.Exit(1)
		}
		if err := eng.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start engine: %v\n", err)
			os.Exit(1)
		}

		src, err := openSource(serveSource)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open source %q: %v\n", serveSource, err)
			os.Exit(1)
		}
		defer src.Close()

		done := make(chan error, 1)
		go func() {
			_, runErr := eng.Run(src)
			done <- runErr
		}()

		var reloadTotal int
		for {
			select {
			case <-sigs.Terminate():
				eng.Stop()
				return

			case <-sigs.Reload():
				reloadTotal++

				cfg, err := confengine.LoadConfigPath(serveConfigPath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "failed to load config (count=%d): %v\n", reloadTotal, err)
					continue
				}

				start := time.Now()
				if err := eng.Reload(cfg); err != nil {
					logger.Errorf("failed to reload config: %v", err)
				}
				logger.Infof("reload (count=%d) took %s", reloadTotal, time.Since(start))

			case runErr := <-done:
				if runErr != nil {
					logger.Errorf("source exhausted with error: %v", runErr)
				}
				eng.Stop()
				return
			}
		}
	},
	Example: "# x12parse serve --config x12parse.yaml --source /var/spool/x12/inbound.edi",
}

func openSource(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "x12parse.yaml", "Configuration file path")
	serveCmd.Flags().StringVar(&serveSource, "source", "-", "Byte source to parse; '-' for stdin")
	rootCmd.AddCommand(serveCmd)
}
