// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package node

import (
	"time"
)

// DefaultConfig is the default configuration of the node API client.
var DefaultConfig = Config{
	CacheSize: 16 << 20,
	Timeout:   10 * time.Second,
}

// Config holds the parameters of the node API client.
type Config struct {
	CacheSize uint64
	Timeout   time.Duration
}

// WithCacheSize sets the maximum size in bytes of cached node responses.
func WithCacheSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// WithTimeout sets the timeout of each request to the node.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}
