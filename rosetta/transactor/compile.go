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
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

const metadataPublicKey = "public_key"

// CompileTransfer builds an unsigned transfer from the first operation that
// describes one, and returns its hex-encoded body along with the payload to be
// signed by the sender. Any other operations are ignored.
func (t *Transactor) CompileTransfer(operations []object.Operation) (string, []object.SigningPayload, error) {

	op, key, ok := selectTransfer(operations)
	if !ok {
		return "", nil, failure.BadOperation{
			Operations:  len(operations),
			Description: failure.NewDescription(transferMissing),
		}
	}

	if !t.resolve.Valid(op.AccountID.Address) {
		return "", nil, failure.BadOperation{
			Operations: len(operations),
			Description: failure.NewDescription(recipientInvalid,
				failure.WithUint64("index", uint64(op.ID.Index)),
				failure.WithString("address", op.AccountID.Address),
			),
		}
	}

	sender, err := t.resolve.Derive(key)
	if err != nil {
		return "", nil, err
	}

	// The key was already checked during selection.
	raw, _ := hex.DecodeString(strings.TrimPrefix(key.HexBytes, "0x"))
	amount, _ := strconv.ParseInt(op.Amount.Value, 10, 64)

	tx := t.build.Transfer(op.AccountID.Address, amount, base58.Encode(raw))
	body, err := wire.Serialize(tx)
	if err != nil {
		return "", nil, failure.BadOperation{
			Operations: len(operations),
			Description: failure.NewDescription(transferInvalid,
				failure.WithUint64("index", uint64(op.ID.Index)),
				failure.WithErr(err),
			),
		}
	}

	unsigned := hex.EncodeToString(body)
	payloads := []object.SigningPayload{
		{
			Address:       sender,
			AccountID:     identifier.Account{Address: sender},
			HexBytes:      unsigned,
			SignatureType: lto.SignatureEd25519,
		},
	}

	return unsigned, payloads, nil
}

// selectTransfer returns the first operation that is a positive transfer of LTO
// carrying the public key of the sender in its metadata.
func selectTransfer(operations []object.Operation) (object.Operation, object.PublicKey, bool) {
	for _, op := range operations {
		if op.Type != lto.TypeTransfer.String() {
			continue
		}
		if op.Amount.Currency.Symbol != lto.Symbol || op.Amount.Currency.Decimals != lto.Decimals {
			continue
		}
		amount, err := strconv.ParseInt(op.Amount.Value, 10, 64)
		if err != nil || amount <= 0 {
			continue
		}
		key, ok := publicKey(op.Metadata)
		if !ok {
			continue
		}
		return op, key, true
	}
	return object.Operation{}, object.PublicKey{}, false
}

func publicKey(metadata map[string]interface{}) (object.PublicKey, bool) {

	value, ok := metadata[metadataPublicKey]
	if !ok {
		return object.PublicKey{}, false
	}

	// The metadata is decoded into generic maps, so we go through JSON again to
	// get the typed key.
	data, err := json.Marshal(value)
	if err != nil {
		return object.PublicKey{}, false
	}
	var key object.PublicKey
	err = json.Unmarshal(data, &key)
	if err != nil {
		return object.PublicKey{}, false
	}

	if key.HexBytes == "" || key.CurveType != lto.CurveEdwards25519 {
		return object.PublicKey{}, false
	}
	_, err = hex.DecodeString(strings.TrimPrefix(key.HexBytes, "0x"))
	if err != nil {
		return object.PublicKey{}, false
	}

	return key, true
}
