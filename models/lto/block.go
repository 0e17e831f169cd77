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

package lto

import (
	"encoding/json"
	"fmt"
)

// Block is a block as returned by the node API. The transactions are kept in
// their raw form and decoded on demand.
type Block struct {
	Height           uint64            `json:"height"`
	Signature        string            `json:"signature"`
	Reference        string            `json:"reference,omitempty"`
	Generator        string            `json:"generator"`
	Timestamp        int64             `json:"timestamp"`
	Fee              int64             `json:"fee"`
	TransactionCount uint64            `json:"transactionCount"`
	Transactions     []json.RawMessage `json:"transactions,omitempty"`
}

// Reward returns the reward pseudo-transaction of the block.
func (b *Block) Reward() Reward {
	r := Reward{
		Header: Header{
			ID:        b.Signature,
			TypeCode:  TypeReward,
			Sender:    b.Generator,
			Timestamp: b.Timestamp,
			Height:    b.Height,
		},
	}
	return r
}

// Transaction decodes the transaction with the given identifier from the block.
func (b *Block) Transaction(id string) (Transaction, error) {
	for _, raw := range b.Transactions {
		var probe struct {
			ID string `json:"id"`
		}
		err := json.Unmarshal(raw, &probe)
		if err != nil {
			return nil, fmt.Errorf("could not decode transaction identifier: %w", err)
		}
		if probe.ID != id {
			continue
		}
		return Decode(raw)
	}
	return nil, ErrNotFound
}
