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

package retriever_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
	"github.com/optakt/lto-rosetta/rosetta/retriever"
	"github.com/optakt/lto-rosetta/testing/mocks"
)

func TestRetriever_Transaction(t *testing.T) {
	ctx := context.Background()
	blockID := mocks.GenericBlockID(mocks.GenericHeight)
	txID := identifier.Transaction{Hash: mocks.GenericSigned().ID}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.OperationsFunc = func(_ context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error) {
			assert.Equal(t, mocks.GenericSigned(), tx)
			assert.Equal(t, converter.Confirmed{Height: mocks.GenericHeight}, scope)
			return mocks.GenericOperations, nil
		}
		ledger := mocks.BaselineLedger(t)
		ledger.ApplyFunc = func(...lto.Effect) error {
			t.Error("ledger should not be updated without effects")
			return nil
		}
		r := retriever.New(mocks.BaselineNode(t), convert, ledger)

		got, err := r.Transaction(ctx, blockID, txID)

		require.NoError(t, err)
		assert.Equal(t, txID, got.ID)
		assert.Equal(t, mocks.GenericOperations, got.Operations)
	})

	t.Run("block hash is optional", func(t *testing.T) {
		t.Parallel()

		r := retriever.New(mocks.BaselineNode(t), mocks.BaselineConverter(t), mocks.BaselineLedger(t))
		id := blockID
		id.Hash = ""

		_, err := r.Transaction(ctx, id, txID)

		assert.NoError(t, err)
	})

	t.Run("block reward", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.OperationsFunc = func(_ context.Context, tx lto.Transaction, _ converter.Scope) ([]object.Operation, error) {
			reward, ok := tx.(lto.Reward)
			require.True(t, ok)
			assert.Equal(t, mocks.GenericHeight, reward.Height)
			assert.Equal(t, mocks.GenericAddress(9), reward.Sender)
			return nil, nil
		}
		r := retriever.New(mocks.BaselineNode(t), convert, mocks.BaselineLedger(t))

		got, err := r.Transaction(ctx, blockID, identifier.Transaction{Hash: blockID.Hash})

		require.NoError(t, err)
		assert.Equal(t, blockID.Hash, got.ID.Hash)
	})

	t.Run("effects are applied before operations are derived", func(t *testing.T) {
		t.Parallel()

		var calls []string
		effect := lto.Grant(mocks.GenericRecipient, mocks.GenericSender, mocks.GenericHeight)
		convert := mocks.BaselineConverter(t)
		convert.EffectsFunc = func(lto.Transaction, converter.Scope) ([]lto.Effect, error) {
			calls = append(calls, "effects")
			return []lto.Effect{effect}, nil
		}
		convert.OperationsFunc = func(context.Context, lto.Transaction, converter.Scope) ([]object.Operation, error) {
			calls = append(calls, "operations")
			return mocks.GenericOperations, nil
		}
		ledger := mocks.BaselineLedger(t)
		ledger.ApplyFunc = func(effects ...lto.Effect) error {
			calls = append(calls, "apply")
			assert.Equal(t, []lto.Effect{effect}, effects)
			return nil
		}
		r := retriever.New(mocks.BaselineNode(t), convert, ledger)

		_, err := r.Transaction(ctx, blockID, txID)

		require.NoError(t, err)
		assert.Equal(t, []string{"effects", "apply", "operations"}, calls)
	})

	t.Run("missing block index", func(t *testing.T) {
		t.Parallel()

		r := retriever.New(mocks.BaselineNode(t), mocks.BaselineConverter(t), mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, identifier.Block{Hash: blockID.Hash}, txID)

		var unknown failure.UnknownTransaction
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("unknown block", func(t *testing.T) {
		t.Parallel()

		node := mocks.BaselineNode(t)
		node.BlockFunc = func(context.Context, uint64) (*lto.Block, error) {
			return nil, fmt.Errorf("could not get block: %w", lto.ErrNotFound)
		}
		r := retriever.New(node, mocks.BaselineConverter(t), mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, txID)

		var unknown failure.UnknownTransaction
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, mocks.GenericHeight, unknown.Height)
	})

	t.Run("handles node failure", func(t *testing.T) {
		t.Parallel()

		node := mocks.BaselineNode(t)
		node.BlockFunc = func(context.Context, uint64) (*lto.Block, error) {
			return nil, mocks.GenericError
		}
		r := retriever.New(node, mocks.BaselineConverter(t), mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, txID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("mismatching block hash", func(t *testing.T) {
		t.Parallel()

		r := retriever.New(mocks.BaselineNode(t), mocks.BaselineConverter(t), mocks.BaselineLedger(t))
		id := blockID
		id.Hash = mocks.GenericSignature(1)

		_, err := r.Transaction(ctx, id, txID)

		var unknown failure.UnknownTransaction
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("transaction not in block", func(t *testing.T) {
		t.Parallel()

		r := retriever.New(mocks.BaselineNode(t), mocks.BaselineConverter(t), mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, identifier.Transaction{Hash: "unknown"})

		var unknown failure.UnknownTransaction
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("unsupported transaction", func(t *testing.T) {
		t.Parallel()

		node := mocks.BaselineNode(t)
		node.BlockFunc = func(_ context.Context, height uint64) (*lto.Block, error) {
			block := mocks.GenericBlock(height)
			block.Transactions = []json.RawMessage{json.RawMessage(`{"id":"exchange","type":7,"fee":1}`)}
			return block, nil
		}
		r := retriever.New(node, mocks.BaselineConverter(t), mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, identifier.Transaction{Hash: "exchange"})

		var unsupported failure.UnsupportedTransaction
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("handles effects failure", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.EffectsFunc = func(lto.Transaction, converter.Scope) ([]lto.Effect, error) {
			return nil, mocks.GenericError
		}
		r := retriever.New(mocks.BaselineNode(t), convert, mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, txID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.EffectsFunc = func(lto.Transaction, converter.Scope) ([]lto.Effect, error) {
			return []lto.Effect{lto.Grant(mocks.GenericRecipient, mocks.GenericSender, mocks.GenericHeight)}, nil
		}
		ledger := mocks.BaselineLedger(t)
		ledger.ApplyFunc = func(...lto.Effect) error {
			return mocks.GenericError
		}
		r := retriever.New(mocks.BaselineNode(t), convert, ledger)

		_, err := r.Transaction(ctx, blockID, txID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles conversion failure", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.OperationsFunc = func(context.Context, lto.Transaction, converter.Scope) ([]object.Operation, error) {
			return nil, mocks.GenericError
		}
		r := retriever.New(mocks.BaselineNode(t), convert, mocks.BaselineLedger(t))

		_, err := r.Transaction(ctx, blockID, txID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}
