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

package submitter

import (
	"context"
	"fmt"
)

// Broadcaster sends signed transactions to an LTO node.
type Broadcaster interface {
	Broadcast(ctx context.Context, signed []byte) (string, error)
}

// Submitter uses the public API of an LTO node to submit signed transactions to
// the network.
type Submitter struct {
	api Broadcaster
}

// New creates a new Submitter that uses the specified API, typically a node
// client.
func New(api Broadcaster) *Submitter {
	s := &Submitter{
		api: api,
	}
	return s
}

// Transaction submits the specified signed transaction and returns the
// identifier the node assigned to it.
func (s *Submitter) Transaction(ctx context.Context, signed []byte) (string, error) {
	id, err := s.api.Broadcast(ctx, signed)
	if err != nil {
		return "", fmt.Errorf("could not submit transaction: %w", err)
	}
	return id, nil
}
