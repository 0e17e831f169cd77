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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/lto-rosetta/models/lto"
)

type Node struct {
	BlockFunc       func(ctx context.Context, height uint64) (*lto.Block, error)
	LastFunc        func(ctx context.Context) (*lto.Block, error)
	TransactionFunc func(ctx context.Context, id string) (lto.Transaction, error)
	BroadcastFunc   func(ctx context.Context, signed []byte) (string, error)
}

func BaselineNode(t *testing.T) *Node {
	t.Helper()

	n := Node{
		BlockFunc: func(ctx context.Context, height uint64) (*lto.Block, error) {
			return GenericBlock(height, GenericSigned()), nil
		},
		LastFunc: func(ctx context.Context) (*lto.Block, error) {
			return GenericBlock(GenericHeight), nil
		},
		TransactionFunc: func(ctx context.Context, id string) (lto.Transaction, error) {
			return GenericSigned(), nil
		},
		BroadcastFunc: func(ctx context.Context, signed []byte) (string, error) {
			return GenericTransactionID.Hash, nil
		},
	}

	return &n
}

func (n *Node) Block(ctx context.Context, height uint64) (*lto.Block, error) {
	return n.BlockFunc(ctx, height)
}

func (n *Node) Last(ctx context.Context) (*lto.Block, error) {
	return n.LastFunc(ctx)
}

func (n *Node) Transaction(ctx context.Context, id string) (lto.Transaction, error) {
	return n.TransactionFunc(ctx, id)
}

func (n *Node) Broadcast(ctx context.Context, signed []byte) (string, error) {
	return n.BroadcastFunc(ctx, signed)
}
