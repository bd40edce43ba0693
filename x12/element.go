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

import "unicode/utf8"

// Element is a transient, non-owning view of one element's bytes. It is
// valid only for the duration of the handler call that received it.
type Element struct {
	b         []byte
	component byte
}

// Bytes returns the element's raw bytes. The slice aliases the caller's
// input buffer and must not be retained past the handler call.
func (e Element) Bytes() []byte {
	return e.b
}

// String returns the element's bytes converted to a string (always
// allocates; use Bytes in the hot path).
func (e Element) String() string {
	return string(e.b)
}

// UTF8 returns the element interpreted as UTF-8, and whether it is valid.
func (e Element) UTF8() (string, bool) {
	if !utf8.Valid(e.b) {
		return "", false
	}
	return string(e.b), true
}

// Empty reports whether the element is a zero-length byte run.
func (e Element) Empty() bool {
	return len(e.b) == 0
}

// Components returns a lazy, finite, non-restartable iterator over the
// element's sub-component byte runs, split on the component separator.
// The core parser never performs this split itself.
func (e Element) Components() *ComponentIter {
	return &ComponentIter{b: e.b, sep: e.component}
}

// ComponentIter walks an element's sub-components one at a time.
type ComponentIter struct {
	b    []byte
	sep  byte
	done bool
}

// Next returns the next sub-component run, or ok=false once exhausted.
func (it *ComponentIter) Next() (b []byte, ok bool) {
	if it.done {
		return nil, false
	}

	for i, c := range it.b {
		if c == it.sep {
			b = it.b[:i]
			it.b = it.b[i+1:]
			return b, true
		}
	}

	b = it.b
	it.b = nil
	it.done = true
	return b, true
}
