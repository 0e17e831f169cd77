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

package transactor_test

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/address"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
	"github.com/optakt/lto-rosetta/rosetta/transactor"
	"github.com/optakt/lto-rosetta/testing/mocks"
)

func testTransactor(t *testing.T, submit transactor.Submitter) *transactor.Transactor {
	t.Helper()

	resolve := address.New(lto.ChainParams[lto.Testnet].ChainID)
	clock := func() time.Time {
		return time.Unix(0, mocks.GenericTimestamp*int64(time.Millisecond))
	}
	build := lto.NewBuilder(lto.WithClock(clock))
	convert := converter.New(resolve, mocks.BaselineLedger(t), mocks.BaselineNode(t), 0)

	return transactor.New(resolve, build, convert, submit)
}

func transferOperation(index uint, recipient string, amount int64) object.Operation {
	return object.Operation{
		ID:        identifier.Operation{Index: index},
		Type:      lto.TypeTransfer.String(),
		AccountID: identifier.Account{Address: recipient},
		Amount:    object.NewAmount(amount, mocks.GenericCurrency),
		Metadata: map[string]interface{}{
			"public_key": map[string]interface{}{
				"hex_bytes":  mocks.GenericPublicKey.HexBytes,
				"curve_type": mocks.GenericPublicKey.CurveType,
			},
		},
	}
}

func signedJSON(t *testing.T, tx lto.Transaction) string {
	t.Helper()

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	return string(data)
}

func TestTransactor_DeriveAddress(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		account, err := tr.DeriveAddress(mocks.GenericPublicKey)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericSender, account.Address)
	})

	t.Run("unsupported curve", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		key := mocks.GenericPublicKey
		key.CurveType = "secp256k1"

		_, err := tr.DeriveAddress(key)

		var curve failure.UnsupportedCurve
		assert.ErrorAs(t, err, &curve)
	})
}

func TestTransactor_CompileTransfer(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		ops := []object.Operation{transferOperation(0, mocks.GenericRecipient, mocks.GenericAmount)}

		unsigned, payloads, err := tr.CompileTransfer(ops)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericUnsigned(), unsigned)
		require.Len(t, payloads, 1)
		assert.Equal(t, mocks.GenericSender, payloads[0].Address)
		assert.Equal(t, mocks.GenericSender, payloads[0].AccountID.Address)
		assert.Equal(t, unsigned, payloads[0].HexBytes)
		assert.Equal(t, lto.SignatureEd25519, payloads[0].SignatureType)
	})

	t.Run("first qualifying operation is used", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		debit := transferOperation(0, mocks.GenericSender, -mocks.GenericAmount)
		otherCurrency := transferOperation(1, mocks.GenericRecipient, 1)
		otherCurrency.Amount.Currency = identifier.Currency{Symbol: "BTC", Decimals: 8}
		otherType := transferOperation(2, mocks.GenericRecipient, 2)
		otherType.Type = lto.TypeLease.String()
		noKey := transferOperation(3, mocks.GenericRecipient, 3)
		noKey.Metadata = nil
		wrongCurve := transferOperation(4, mocks.GenericRecipient, 4)
		wrongCurve.Metadata["public_key"] = object.PublicKey{HexBytes: mocks.GenericPublicKey.HexBytes, CurveType: "secp256k1"}
		valid := transferOperation(5, mocks.GenericRecipient, mocks.GenericAmount)
		extra := transferOperation(6, mocks.GenericAddress(5), 9)
		ops := []object.Operation{debit, otherCurrency, otherType, noKey, wrongCurve, valid, extra}

		unsigned, _, err := tr.CompileTransfer(ops)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericUnsigned(), unsigned)
	})

	t.Run("typed public key metadata", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		op := transferOperation(0, mocks.GenericRecipient, mocks.GenericAmount)
		op.Metadata["public_key"] = mocks.GenericPublicKey

		unsigned, _, err := tr.CompileTransfer([]object.Operation{op})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericUnsigned(), unsigned)
	})

	t.Run("no qualifying operation", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		zero := transferOperation(0, mocks.GenericRecipient, 0)
		badKey := transferOperation(1, mocks.GenericRecipient, 10)
		badKey.Metadata["public_key"] = map[string]interface{}{"hex_bytes": "zz", "curve_type": lto.CurveEdwards25519}

		_, _, err := tr.CompileTransfer([]object.Operation{zero, badKey})

		var bad failure.BadOperation
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, 2, bad.Operations)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		op := transferOperation(0, mocks.GenericSender+"x", mocks.GenericAmount)

		_, _, err := tr.CompileTransfer([]object.Operation{op})

		var bad failure.BadOperation
		assert.ErrorAs(t, err, &bad)
	})

	t.Run("round trip through parse", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		ops := []object.Operation{transferOperation(0, mocks.GenericRecipient, mocks.GenericAmount)}

		unsigned, _, err := tr.CompileTransfer(ops)
		require.NoError(t, err)

		parsed, signers, err := tr.Parse(context.Background(), unsigned, false)

		require.NoError(t, err)
		assert.Empty(t, signers)
		require.Len(t, parsed, 3)
		assert.Equal(t, mocks.GenericRecipient, parsed[0].AccountID.Address)
		assert.Equal(t, "500", parsed[0].Amount.Value)
		assert.Equal(t, mocks.GenericSender, parsed[1].AccountID.Address)
		assert.Equal(t, "-500", parsed[1].Amount.Value)
		assert.Equal(t, mocks.GenericSender, parsed[2].AccountID.Address)
		assert.Equal(t, "-100000000", parsed[2].Amount.Value)
	})
}

func TestTransactor_Parse(t *testing.T) {
	ctx := context.Background()

	t.Run("signed transfer", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		ops, signers, err := tr.Parse(ctx, signedJSON(t, mocks.GenericSigned()), true)

		require.NoError(t, err)
		assert.Len(t, ops, 3)
		assert.Equal(t, []identifier.Account{{Address: mocks.GenericSender}}, signers)
	})

	t.Run("signed transfer with forged proof", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := mocks.GenericSigned()
		tx.Amount = 1

		_, _, err := tr.Parse(ctx, signedJSON(t, tx), true)

		var invalid failure.InvalidSignature
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("signed transfer with sender of the public key", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := mocks.GenericSigned()
		tx.Sender = mocks.GenericSender

		ops, signers, err := tr.Parse(ctx, signedJSON(t, tx), true)

		require.NoError(t, err)
		require.Len(t, ops, 3)
		assert.Equal(t, []identifier.Account{{Address: mocks.GenericSender}}, signers)
		assert.Equal(t, mocks.GenericSender, ops[1].AccountID.Address)
		assert.Equal(t, mocks.GenericSender, ops[2].AccountID.Address)
	})

	t.Run("signed transfer with sender of another key", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := mocks.GenericSigned()
		tx.Sender = mocks.GenericAddress(7)

		ops, signers, err := tr.Parse(ctx, signedJSON(t, tx), true)

		var invalid failure.InvalidSignature
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, mocks.GenericAddress(7), invalid.Description.Details()["sender"])
		assert.Equal(t, mocks.GenericSender, invalid.Description.Details()["signer"])
		assert.Nil(t, ops)
		assert.Nil(t, signers)
	})

	t.Run("signed transfer without proofs", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := mocks.GenericSigned()
		tx.Proofs = nil

		_, _, err := tr.Parse(ctx, signedJSON(t, tx), true)

		var invalid failure.InvalidSignature
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("signed transaction of other kind", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := lto.Anchor{
			Header: lto.Header{
				ID:       "anchor",
				TypeCode: lto.TypeAnchor,
				Sender:   mocks.GenericSender,
				Fee:      35000000,
			},
		}

		ops, signers, err := tr.Parse(ctx, signedJSON(t, tx), true)

		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, "-35000000", ops[0].Amount.Value)
		assert.Equal(t, []identifier.Account{{Address: mocks.GenericSender}}, signers)
	})

	t.Run("signed transaction of unsupported kind", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, _, err := tr.Parse(ctx, `{"type":7,"fee":1}`, true)

		var unsupported failure.UnsupportedTransaction
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, 7, unsupported.Code)
	})

	t.Run("signed transaction with invalid JSON", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, _, err := tr.Parse(ctx, `{"type":`, true)

		var invalid failure.InvalidPayload
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unsigned transaction with invalid hex", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, _, err := tr.Parse(ctx, "not hex", false)

		var invalid failure.InvalidPayload
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "hex", invalid.Encoding)
	})

	t.Run("unsigned transaction of unsupported kind", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		body := []byte{byte(lto.TypeLease), 2, 0, 0}

		_, _, err := tr.Parse(ctx, hex.EncodeToString(body), false)

		var unsupported failure.UnsupportedTransaction
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, int(lto.TypeLease), unsupported.Code)
	})

	t.Run("unsigned transaction truncated", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		unsigned := mocks.GenericUnsigned()

		_, _, err := tr.Parse(ctx, unsigned[:40], false)

		var invalid failure.InvalidPayload
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestTransactor_AttachSignatures(t *testing.T) {
	body, err := hex.DecodeString(mocks.GenericUnsigned())
	require.NoError(t, err)
	signature := hex.EncodeToString(ed25519.Sign(mocks.GenericPrivateKey, body))

	sig := func(hexBytes string) object.Signature {
		return object.Signature{
			SigningPayload: object.SigningPayload{
				AccountID:     identifier.Account{Address: mocks.GenericSender},
				HexBytes:      mocks.GenericUnsigned(),
				SignatureType: lto.SignatureEd25519,
			},
			SignatureType: lto.SignatureEd25519,
			HexBytes:      hexBytes,
			PublicKey:     mocks.GenericPublicKey,
		}
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		signed, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{sig(signature)})
		require.NoError(t, err)

		tx, err := lto.Decode([]byte(signed))
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericSigned(), tx)

		_, signers, err := tr.Parse(context.Background(), signed, true)
		require.NoError(t, err)
		assert.Equal(t, []identifier.Account{{Address: mocks.GenericSender}}, signers)
	})

	t.Run("signature with hex prefix", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		signed, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{sig("0x" + signature)})
		require.NoError(t, err)

		tx, err := lto.Decode([]byte(signed))
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericSigned().Proofs, tx.Base().Proofs)
	})

	t.Run("unsupported signature type", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		second := sig(signature)
		second.SignatureType = "ecdsa"

		_, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{sig(signature), second})

		var unsupported failure.UnsupportedSignature
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, 1, unsupported.Index)
		assert.Equal(t, "ecdsa", unsupported.Type)
	})

	t.Run("unsupported signing payload type", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		s := sig(signature)
		s.SigningPayload.SignatureType = "schnorr_1"

		_, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{s})

		var unsupported failure.UnsupportedSignature
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("signing payload without type", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		s := sig(signature)
		s.SigningPayload.SignatureType = ""

		signed, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{s})

		var unsupported failure.UnsupportedSignature
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, 0, unsupported.Index)
		assert.Empty(t, signed)
	})

	t.Run("signature with invalid hex", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{sig("zz")})

		var invalid failure.InvalidSignature
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("signature with invalid length", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, err := tr.AttachSignatures(mocks.GenericUnsigned(), []object.Signature{sig(signature[:64])})

		var invalid failure.InvalidSignature
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("invalid unsigned transaction", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))

		_, err := tr.AttachSignatures("zz", []object.Signature{sig(signature)})

		var invalid failure.InvalidPayload
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestTransactor_TransactionIdentifier(t *testing.T) {
	t.Run("transfer identifier is computed from body", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := mocks.GenericSigned()
		want := tx.ID
		tx.ID = "tampered"

		txID, err := tr.TransactionIdentifier(signedJSON(t, tx))

		require.NoError(t, err)
		assert.Equal(t, want, txID.Hash)

		body, err := hex.DecodeString(mocks.GenericUnsigned())
		require.NoError(t, err)
		assert.Equal(t, wire.ID(body), txID.Hash)
	})

	t.Run("other kinds use their identifier", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := lto.Anchor{Header: lto.Header{ID: "anchor", TypeCode: lto.TypeAnchor, Sender: mocks.GenericSender}}

		txID, err := tr.TransactionIdentifier(signedJSON(t, tx))

		require.NoError(t, err)
		assert.Equal(t, "anchor", txID.Hash)
	})

	t.Run("other kinds without identifier", func(t *testing.T) {
		t.Parallel()

		tr := testTransactor(t, mocks.BaselineSubmitter(t))
		tx := lto.Anchor{Header: lto.Header{TypeCode: lto.TypeAnchor, Sender: mocks.GenericSender}}

		_, err := tr.TransactionIdentifier(signedJSON(t, tx))

		var unsupported failure.UnsupportedTransaction
		assert.ErrorAs(t, err, &unsupported)
	})
}

func TestTransactor_SubmitTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("node identifier takes precedence", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		var sent []byte
		submit.TransactionFunc = func(_ context.Context, signed []byte) (string, error) {
			sent = signed
			return "node-id", nil
		}
		tr := testTransactor(t, submit)
		signed := signedJSON(t, mocks.GenericSigned())

		txID, err := tr.SubmitTransaction(ctx, signed)

		require.NoError(t, err)
		assert.Equal(t, "node-id", txID.Hash)
		assert.Equal(t, signed, string(sent))
	})

	t.Run("computed identifier without node identifier", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(context.Context, []byte) (string, error) {
			return "", nil
		}
		tr := testTransactor(t, submit)

		txID, err := tr.SubmitTransaction(ctx, signedJSON(t, mocks.GenericSigned()))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericSigned().ID, txID.Hash)
	})

	t.Run("handles submission failure", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(context.Context, []byte) (string, error) {
			return "", mocks.GenericError
		}
		tr := testTransactor(t, submit)

		_, err := tr.SubmitTransaction(ctx, signedJSON(t, mocks.GenericSigned()))

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid transaction", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(context.Context, []byte) (string, error) {
			t.Error("invalid transaction should not be submitted")
			return "", nil
		}
		tr := testTransactor(t, submit)

		_, err := tr.SubmitTransaction(ctx, "{")

		var invalid failure.InvalidPayload
		assert.ErrorAs(t, err, &invalid)
	})
}
