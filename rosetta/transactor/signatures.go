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
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// AttachSignatures adds the given signatures as proofs to an unsigned transfer
// and returns the JSON encoding of the signed transaction. Signatures are not
// verified here; the node rejects invalid proofs on submission.
func (t *Transactor) AttachSignatures(unsigned string, signatures []object.Signature) (string, error) {

	tx, err := decodeUnsigned(unsigned)
	if err != nil {
		return "", err
	}

	proofs := make([]string, 0, len(signatures))
	for index, sig := range signatures {
		if sig.SignatureType != lto.SignatureEd25519 {
			return "", failure.UnsupportedSignature{
				Index:       index,
				Type:        sig.SignatureType,
				Description: failure.NewDescription(sigTypeInvalid),
			}
		}
		if sig.SigningPayload.SignatureType != lto.SignatureEd25519 {
			return "", failure.UnsupportedSignature{
				Index:       index,
				Type:        sig.SigningPayload.SignatureType,
				Description: failure.NewDescription(sigPayloadInvalid),
			}
		}
		raw, err := hex.DecodeString(strings.TrimPrefix(sig.HexBytes, "0x"))
		if err != nil {
			return "", failure.InvalidSignature{
				Index:       index,
				Description: failure.NewDescription(sigNotHex, failure.WithErr(err)),
			}
		}
		if len(raw) != ed25519.SignatureSize {
			return "", failure.InvalidSignature{
				Index: index,
				Description: failure.NewDescription(sigLength,
					failure.WithInt64("have", int64(len(raw))),
					failure.WithInt64("want", ed25519.SignatureSize),
				),
			}
		}
		proofs = append(proofs, base58.Encode(raw))
	}

	signed := t.build.Rebuild(tx)
	body, err := wire.Serialize(signed)
	if err != nil {
		return "", failure.InvalidPayload{
			Encoding:    "binary",
			Description: failure.NewDescription(payloadMalformed, failure.WithErr(err)),
		}
	}
	signed.ID = wire.ID(body)
	signed.Proofs = proofs

	data, err := json.Marshal(signed)
	if err != nil {
		return "", fmt.Errorf("could not encode signed transaction: %w", err)
	}

	return string(data), nil
}
