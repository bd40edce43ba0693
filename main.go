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

package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/x12stream/x12parse/cmd"

	// Blank-imported for their init-time exporter.Register calls.
	_ "github.com/x12stream/x12parse/exporter/sinker/audit"
	_ "github.com/x12stream/x12parse/exporter/sinker/metrics"
	_ "github.com/x12stream/x12parse/exporter/sinker/report"
)

func main() {
	cmd.Execute()
}
