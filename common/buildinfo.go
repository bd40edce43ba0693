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

package common

// BuildInfo describes how the running binary was built.
type BuildInfo struct {
	Version string
	GitHash string
	Time    string
}

// buildVersion, buildTime and buildHash are injected at link time via
// -ldflags "-X github.com/x12stream/x12parse/common.buildVersion=...".
var (
	buildVersion string
	buildTime    string
	buildHash    string
)

// GetBuildInfo returns the build info, falling back to Version when no
// version was injected at link time.
func GetBuildInfo() BuildInfo {
	v := buildVersion
	if v == "" {
		v = Version
	}
	return BuildInfo{
		Version: v,
		GitHash: buildHash,
		Time:    buildTime,
	}
}
