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

// Error descriptions for common errors.
const (
	// Operation selection errors.
	transferMissing  = "no operation describes a transfer of LTO with a valid edwards25519 public key"
	transferInvalid  = "transfer can not be encoded"
	recipientInvalid = "transfer recipient is not a valid address of the network"

	// Payload errors.
	payloadNotHex    = "unsigned transaction is not a valid hex-encoded string"
	payloadNotJSON   = "signed transaction is not a valid JSON-encoded transaction"
	payloadMalformed = "transaction body can not be decoded"
	payloadNoID      = "transaction has no identifier"

	// Signature errors.
	sigTypeInvalid    = "signature type is not ed25519"
	sigPayloadInvalid = "signing payload type is not ed25519"
	sigNotHex         = "signature is not a valid hex-encoded string"
	sigLength         = "signature has invalid length"
	sigMissing        = "transaction has no proofs"
	sigNotBase58      = "proof is not a valid base58-encoded string"
	sigMismatch       = "proof does not verify against transaction body"
	senderKeyInvalid  = "sender public key is not a valid edwards25519 key"
	senderMismatch    = "sender address does not belong to the sender public key"
)
