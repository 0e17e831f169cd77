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

package retriever

import (
	"context"
	"errors"
	"fmt"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Retriever explains confirmed transactions in terms of operations.
type Retriever struct {
	node    Node
	convert Converter
	ledger  Ledger
}

// New creates a new Retriever.
func New(node Node, convert Converter, ledger Ledger) *Retriever {

	r := Retriever{
		node:    node,
		convert: convert,
		ledger:  ledger,
	}

	return &r
}

// Transaction returns the operations of a transaction included in the given
// block. The sponsorship changes caused by the transaction are recorded in the
// ledger before its operations are derived, so that a sponsor can pay the fee
// of the transaction that made it one. A transaction identifier equal to the
// block hash designates the reward of the block.
func (r *Retriever) Transaction(ctx context.Context, blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {

	if blockID.Index == nil {
		return nil, failure.UnknownTransaction{
			Hash:        txID.Hash,
			Description: failure.NewDescription(blockUnknown),
		}
	}
	height := *blockID.Index

	block, err := r.node.Block(ctx, height)
	if errors.Is(err, lto.ErrNotFound) {
		return nil, failure.UnknownTransaction{
			Height:      height,
			Hash:        txID.Hash,
			Description: failure.NewDescription(blockUnknown),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get block: %w", err)
	}
	if blockID.Hash != "" && blockID.Hash != block.Signature {
		return nil, failure.UnknownTransaction{
			Height: height,
			Hash:   txID.Hash,
			Description: failure.NewDescription(blockMismatch,
				failure.WithString("block_hash", blockID.Hash),
				failure.WithString("signature", block.Signature),
			),
		}
	}

	var tx lto.Transaction
	if txID.Hash == block.Signature {
		tx = block.Reward()
	} else {
		tx, err = block.Transaction(txID.Hash)
	}
	if errors.Is(err, lto.ErrNotFound) {
		return nil, failure.UnknownTransaction{
			Height:      height,
			Hash:        txID.Hash,
			Description: failure.NewDescription(txUnknown),
		}
	}
	if errors.Is(err, lto.ErrUnsupportedType) {
		return nil, failure.UnsupportedTransaction{
			Description: failure.NewDescription(txUnsupported,
				failure.WithString("hash", txID.Hash),
				failure.WithErr(err),
			),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get transaction: %w", err)
	}

	scope := converter.Confirmed{Height: block.Height}
	effects, err := r.convert.Effects(tx, scope)
	if err != nil {
		return nil, fmt.Errorf("could not derive effects: %w", err)
	}
	if len(effects) > 0 {
		err = r.ledger.Apply(effects...)
		if err != nil {
			return nil, fmt.Errorf("could not apply effects: %w", err)
		}
	}

	operations, err := r.convert.Operations(ctx, tx, scope)
	if err != nil {
		return nil, fmt.Errorf("could not derive operations: %w", err)
	}

	transaction := object.Transaction{
		ID:         txID,
		Operations: operations,
	}

	return &transaction, nil
}
