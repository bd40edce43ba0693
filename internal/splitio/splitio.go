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

// Package splitio holds the handful of byte constants shared by the x12
// parser's inter-segment whitespace skip and by anything that needs to
// normalize captured segment text for logging.
package splitio

var (
	CharCRLF = []byte("\r\n")
	CharCR   = []byte("\r")
	CharLF   = []byte("\n")
)

// IsCROrLF reports whether b is a bare CR or LF byte, the only whitespace
// the core parser is permitted to skip between segments.
func IsCROrLF(b byte) bool {
	return b == CharCR[0] || b == CharLF[0]
}
