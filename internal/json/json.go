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

// Package json wraps goccy/go-json behind the standard library's
// encoding/json surface, so report sinks can swap encoders without
// touching call sites.
package json

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// Encoder writes one JSON value per call, newline-terminated.
type Encoder interface {
	Encode(v any) error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return gojson.NewEncoder(w)
}

// Marshal encodes v as JSON.
func Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal decodes JSON-encoded data into v.
func Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}
