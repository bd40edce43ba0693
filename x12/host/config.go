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

package host

// Config tunes Driver's buffer growth, decoded from the "host"
// confengine config block.
type Config struct {
	InitialBufferSize int `config:"initial_buffer_size"`
	MaxBufferSize     int `config:"max_buffer_size"`
	ResizeMultiplier  int `config:"resize_multiplier"`
}

const (
	defaultInitialBufferSize = 8 * 1024
	defaultMaxBufferSize     = 16 * 1024 * 1024
	defaultResizeMultiplier  = 2
)

// DefaultConfig returns the reference defaults: 8 KiB initial buffer,
// 16 MiB ceiling, doubling growth.
func DefaultConfig() Config {
	return Config{
		InitialBufferSize: defaultInitialBufferSize,
		MaxBufferSize:     defaultMaxBufferSize,
		ResizeMultiplier:  defaultResizeMultiplier,
	}
}

// applyDefaults fills zero-valued fields with their defaults, the same
// forgiving pattern confengine-decoded config structs use elsewhere in
// this repository.
func (c Config) applyDefaults() Config {
	if c.InitialBufferSize <= 0 {
		c.InitialBufferSize = defaultInitialBufferSize
	}
	if c.MaxBufferSize <= 0 {
		c.MaxBufferSize = defaultMaxBufferSize
	}
	if c.ResizeMultiplier <= 1 {
		c.ResizeMultiplier = defaultResizeMultiplier
	}
	return c
}
