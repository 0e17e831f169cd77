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

package transactor

import (
	"context"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Resolver derives account addresses from public keys.
type Resolver interface {
	Derive(key object.PublicKey) (string, error)
	FromBase58(key string) (string, error)
	Sender(header lto.Header) (string, error)
	Valid(address string) bool
}

// Builder creates transfer transactions.
type Builder interface {
	Transfer(recipient string, amount int64, senderPublicKey string) lto.Transfer
	Rebuild(fields lto.Transfer) lto.Transfer
}

// Converter turns transactions into operations.
type Converter interface {
	Operations(ctx context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error)
}

// Submitter sends signed transactions to the network.
type Submitter interface {
	Transaction(ctx context.Context, signed []byte) (string, error)
}
