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

	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

type Retriever struct {
	TransactionFunc func(ctx context.Context, blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error)
}

func BaselineRetriever(t *testing.T) *Retriever {
	t.Helper()

	r := Retriever{
		TransactionFunc: func(ctx context.Context, blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {
			tx := object.Transaction{
				ID:         txID,
				Operations: GenericOperations,
			}
			return &tx, nil
		},
	}

	return &r
}

func (r *Retriever) Transaction(ctx context.Context, blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {
	return r.TransactionFunc(ctx, blockID, txID)
}
