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

package rosetta

import (
	"context"

	"github.com/optakt/lto-rosetta/rosetta/configuration"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Configuration checks network identifiers against the served network.
type Configuration interface {
	Check(network identifier.Network) (configuration.Network, error)
}

// Validator checks the format of requests.
type Validator interface {
	Request(request interface{}) error
}

// Transactor implements the steps of the construction flow.
type Transactor interface {
	DeriveAddress(key object.PublicKey) (identifier.Account, error)
	CompileTransfer(operations []object.Operation) (string, []object.SigningPayload, error)
	Parse(ctx context.Context, payload string, signed bool) ([]object.Operation, []identifier.Account, error)
	AttachSignatures(unsigned string, signatures []object.Signature) (string, error)
	TransactionIdentifier(signed string) (identifier.Transaction, error)
	SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error)
}

// Retriever explains confirmed transactions.
type Retriever interface {
	Transaction(ctx context.Context, blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error)
}
