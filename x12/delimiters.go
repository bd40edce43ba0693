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

package x12

// Delimiters is the four-byte separator set declared by an interchange's
// ISA header. It is immutable for the duration of the interchange.
type Delimiters struct {
	Element    byte // byte 3 of the ISA header, field separator
	Component  byte // ISA16, sub-element separator
	Terminator byte // segment terminator
	Repetition byte // repetition separator, default '^'
}

// DefaultRepetition is used when ISA11 does not carry a usable override.
const DefaultRepetition = '^'

// isValidDelimiterByte reports whether b is in the printable ASCII range excluding
// letters and digits, the X12 rule for delimiter candidates.
func isValidDelimiterByte(b byte) bool {
	if b < 0x21 || b > 0x7E {
		return false
	}
	if b >= 'A' && b <= 'Z' {
		return false
	}
	if b >= 'a' && b <= 'z' {
		return false
	}
	if b >= '0' && b <= '9' {
		return false
	}
	return true
}

// Validate checks the pairwise-distinct and printable-ASCII invariants
// from the data model's delimiter table.
func (d Delimiters) Validate() bool {
	if !isValidDelimiterByte(d.Element) || !isValidDelimiterByte(d.Component) ||
		!isValidDelimiterByte(d.Terminator) || !isValidDelimiterByte(d.Repetition) {
		return false
	}

	bs := [4]byte{d.Element, d.Component, d.Terminator, d.Repetition}
	for i := 0; i < len(bs); i++ {
		for j := i + 1; j < len(bs); j++ {
			if bs[i] == bs[j] {
				return false
			}
		}
	}
	return true
}
