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
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Parse returns the operations of a transaction. Unsigned transactions are
// hex-encoded binary transfers and have no signers; signed transactions are
// JSON-encoded, and their proofs are checked before the address of their
// public key is returned as the signer.
func (t *Transactor) Parse(ctx context.Context, payload string, signed bool) ([]object.Operation, []identifier.Account, error) {

	var tx lto.Transaction
	var err error
	if signed {
		tx, err = decodeSigned(payload)
	} else {
		tx, err = decodeUnsigned(payload)
	}
	if err != nil {
		return nil, nil, err
	}

	if !signed {
		operations, err := t.convert.Operations(ctx, tx, converter.Unconfirmed{})
		if err != nil {
			return nil, nil, err
		}
		return operations, []identifier.Account{}, nil
	}

	err = verify(tx)
	if err != nil {
		return nil, nil, err
	}
	signer, err := t.signer(tx.Base())
	if err != nil {
		return nil, nil, err
	}

	operations, err := t.convert.Operations(ctx, tx, converter.Unconfirmed{})
	if err != nil {
		return nil, nil, err
	}

	return operations, []identifier.Account{{Address: signer}}, nil
}

// signer returns the address derived from the public key that signed the
// transaction. A sender address that does not belong to that key is rejected.
func (t *Transactor) signer(header lto.Header) (string, error) {

	if header.SenderPublicKey == "" {
		return t.resolve.Sender(header)
	}

	derived, err := t.resolve.FromBase58(header.SenderPublicKey)
	if err != nil {
		return "", failure.InvalidPayload{
			Encoding:    "json",
			Description: failure.NewDescription(senderKeyInvalid, failure.WithErr(err)),
		}
	}
	if header.Sender != "" && header.Sender != derived {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(senderMismatch,
				failure.WithString("sender", header.Sender),
				failure.WithString("signer", derived),
			),
		}
	}

	return derived, nil
}

func decodeUnsigned(payload string) (lto.Transfer, error) {

	body, err := hex.DecodeString(payload)
	if err != nil {
		return lto.Transfer{}, failure.InvalidPayload{
			Encoding:    "hex",
			Description: failure.NewDescription(payloadNotHex, failure.WithErr(err)),
		}
	}

	tx, err := wire.Parse(body)
	if errors.Is(err, lto.ErrUnsupportedType) {
		return lto.Transfer{}, failure.UnsupportedTransaction{
			Code:        int(body[0]),
			Description: failure.NewDescription(payloadMalformed, failure.WithErr(err)),
		}
	}
	if err != nil {
		return lto.Transfer{}, failure.InvalidPayload{
			Encoding:    "binary",
			Description: failure.NewDescription(payloadMalformed, failure.WithErr(err)),
		}
	}

	return tx, nil
}

func decodeSigned(payload string) (lto.Transaction, error) {

	tx, err := lto.Decode([]byte(payload))
	if errors.Is(err, lto.ErrUnsupportedType) {
		var probe struct {
			Type int `json:"type"`
		}
		_ = json.Unmarshal([]byte(payload), &probe)
		return nil, failure.UnsupportedTransaction{
			Code:        probe.Type,
			Description: failure.NewDescription(payloadNotJSON, failure.WithErr(err)),
		}
	}
	if err != nil {
		return nil, failure.InvalidPayload{
			Encoding:    "json",
			Description: failure.NewDescription(payloadNotJSON, failure.WithErr(err)),
		}
	}

	return tx, nil
}

// verify checks the proofs of a signed transfer against its body. Only
// transfers have a binary representation, so other transactions are accepted
// as they are.
func verify(tx lto.Transaction) error {

	transfer, ok := tx.(lto.Transfer)
	if !ok {
		return nil
	}

	if len(transfer.Proofs) == 0 {
		return failure.InvalidSignature{
			Description: failure.NewDescription(sigMissing),
		}
	}

	body, err := wire.Serialize(transfer)
	if err != nil {
		return failure.InvalidPayload{
			Encoding:    "json",
			Description: failure.NewDescription(payloadMalformed, failure.WithErr(err)),
		}
	}
	key, _ := base58.Decode(transfer.SenderPublicKey)

	for index, proof := range transfer.Proofs {
		signature, err := base58.Decode(proof)
		if err != nil {
			return failure.InvalidSignature{
				Index:       index,
				Description: failure.NewDescription(sigNotBase58, failure.WithErr(err)),
			}
		}
		if len(signature) != ed25519.SignatureSize || !ed25519.Verify(key, body, signature) {
			return failure.InvalidSignature{
				Index:       index,
				Description: failure.NewDescription(sigMismatch, failure.WithString("proof", proof)),
			}
		}
	}

	return nil
}
