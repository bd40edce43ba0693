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

// Package host drives x12.Parser against an arbitrary byte source: a
// growable, compactable buffer window with dynamic growth, compaction,
// and a configurable capacity ceiling.
package host

// Window is a contiguous byte region with three offsets: base,
// consumed-cursor, and filled-end. The region between consumed and
// filled is the unparsed view handed to the parser.
//
// Invariant: 0 <= consumed <= filled <= len(buf). Capacity is
// monotonically non-decreasing: Grow only extends buf, Compact only
// shifts bytes toward the front.
type Window struct {
	buf      []byte
	consumed int
	filled   int
}

// NewWindow allocates a window with the given initial capacity.
func NewWindow(initialSize int) *Window {
	return &Window{buf: make([]byte, initialSize)}
}

// Unparsed returns the region between consumed and filled: the bytes
// not yet handed to the parser in a successful call.
func (w *Window) Unparsed() []byte {
	return w.buf[w.consumed:w.filled]
}

// Tail returns the unused region at the end of the buffer, available
// for the next read from the source.
func (w *Window) Tail() []byte {
	return w.buf[w.filled:]
}

// Capacity returns the buffer's current allocated length.
func (w *Window) Capacity() int {
	return len(w.buf)
}

// Advance moves the consumed-cursor forward by n bytes, reflecting a
// successful ParseSegment call.
func (w *Window) Advance(n int) {
	w.consumed += n
}

// Filled records that n additional bytes were read into Tail().
func (w *Window) Filled(n int) {
	w.filled += n
}

// AtCapacity reports whether the tail region is exhausted.
func (w *Window) AtCapacity() bool {
	return w.filled == len(w.buf)
}

// ShouldCompact reports whether the consumed region is more than half
// of capacity, the threshold at which compaction reclaims more space
// than growth would.
func (w *Window) ShouldCompact() bool {
	return len(w.buf) > 0 && w.consumed > len(w.buf)/2
}

// Compact moves unparsed bytes to the front of the buffer and resets
// the cursors accordingly.
func (w *Window) Compact() {
	n := copy(w.buf, w.Unparsed())
	w.consumed = 0
	w.filled = n
}

// Grow extends the buffer by multiplier, capped at maxSize. Returns
// false if the buffer is already at maxSize.
func (w *Window) Grow(multiplier int, maxSize int) bool {
	if len(w.buf) >= maxSize {
		return false
	}
	next := len(w.buf) * multiplier
	if next > maxSize {
		next = maxSize
	}
	if next <= len(w.buf) {
		return false
	}
	grown := make([]byte, next)
	copy(grown, w.buf)
	w.buf = grown
	return true
}
