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

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
)

// TransactionIdentifier returns the identifier of a signed transaction. For
// transfers, it is recomputed from the body, so that a tampered identifier in
// the payload has no effect.
func (t *Transactor) TransactionIdentifier(signed string) (identifier.Transaction, error) {

	tx, err := decodeSigned(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	transfer, ok := tx.(lto.Transfer)
	if ok {
		body, err := wire.Serialize(transfer)
		if err != nil {
			return identifier.Transaction{}, failure.InvalidPayload{
				Encoding:    "json",
				Description: failure.NewDescription(payloadMalformed, failure.WithErr(err)),
			}
		}
		return identifier.Transaction{Hash: wire.ID(body)}, nil
	}

	id := tx.Base().ID
	if id == "" {
		return identifier.Transaction{}, failure.UnsupportedTransaction{
			Code:        int(tx.Type()),
			Description: failure.NewDescription(payloadNoID),
		}
	}

	return identifier.Transaction{Hash: id}, nil
}

// SubmitTransaction broadcasts a signed transaction and returns its
// identifier. The identifier returned by the node takes precedence over the
// locally computed one.
func (t *Transactor) SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error) {

	txID, err := t.TransactionIdentifier(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	id, err := t.submit.Transaction(ctx, []byte(signed))
	if err != nil {
		return identifier.Transaction{}, err
	}
	if id != "" {
		txID.Hash = id
	}

	return txID, nil
}
