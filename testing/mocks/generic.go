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

package mocks

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"

	"github.com/optakt/lto-rosetta/codec/wire"
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/address"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Global variables that can be used for testing. They are non-nil valid values for the types
// commonly needed to test the adapter components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericHeight = uint64(42)

	GenericBytes = []byte(`test`)

	GenericNetwork = identifier.Network{
		Blockchain: lto.Blockchain,
		Network:    lto.Testnet,
	}

	GenericCurrency = identifier.Currency{
		Symbol:   lto.Symbol,
		Decimals: lto.Decimals,
	}

	GenericAmount = int64(500)

	GenericTimestamp = int64(1622548800000)

	// GenericPrivateKey is the key of the sender of all generic transactions.
	GenericPrivateKey = GenericKey(0)

	GenericPublicKey = object.PublicKey{
		HexBytes:  hex.EncodeToString(GenericPrivateKey.Public().(ed25519.PublicKey)),
		CurveType: lto.CurveEdwards25519,
	}

	GenericSender    = GenericAddress(0)
	GenericRecipient = GenericAddress(1)

	GenericTransfer = lto.Transfer{
		Header: lto.Header{
			TypeCode:        lto.TypeTransfer,
			Version:         lto.TransferVersion,
			SenderPublicKey: base58.Encode(GenericPrivateKey.Public().(ed25519.PublicKey)),
			Fee:             lto.DefaultTransferFee,
			Timestamp:       GenericTimestamp,
		},
		Recipient: GenericRecipient,
		Amount:    GenericAmount,
	}

	GenericTransactionID = identifier.Transaction{
		Hash: "9fPK5UZgUbWVSv7kBeGXGvNGmhy2gDbwDwbjWkUTKDKY",
	}

	GenericOperations = []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      lto.TypeTransfer.String(),
			Status:    "SUCCESS",
			AccountID: identifier.Account{Address: GenericRecipient},
			Amount:    object.NewAmount(GenericAmount, GenericCurrency),
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      lto.TypeTransfer.String(),
			Status:    "SUCCESS",
			AccountID: identifier.Account{Address: GenericSender},
			Amount:    object.NewAmount(-GenericAmount, GenericCurrency),
		},
		{
			ID:        identifier.Operation{Index: 2},
			Type:      lto.TypeTransfer.String(),
			Status:    "SUCCESS",
			AccountID: identifier.Account{Address: GenericSender},
			Amount:    object.NewAmount(-lto.DefaultTransferFee, GenericCurrency),
		},
	}
)

// GenericKey returns a deterministic private key for the given index.
func GenericKey(index int) ed25519.PrivateKey {
	seed := bytes.Repeat([]byte{byte(index + 1)}, ed25519.SeedSize)
	return ed25519.NewKeyFromSeed(seed)
}

// GenericAddress returns the testnet address of the generic key with the given
// index.
func GenericAddress(index int) string {
	key := GenericKey(index).Public().(ed25519.PublicKey)
	addr, err := address.New(lto.ChainParams[lto.Testnet].ChainID).FromBytes(key)
	if err != nil {
		panic(err)
	}
	return addr
}

// GenericBlockID returns a block identifier with the given index.
func GenericBlockID(height uint64) identifier.Block {
	return identifier.Block{
		Index: &height,
		Hash:  GenericSignature(height),
	}
}

// GenericSignature returns a deterministic block signature for the given height.
func GenericSignature(height uint64) string {
	return base58.Encode(bytes.Repeat([]byte{byte(height)}, ed25519.SignatureSize))
}

// GenericBlock returns a block at the given height that contains the given
// transactions.
func GenericBlock(height uint64, transactions ...lto.Transaction) *lto.Block {
	raws := make([]json.RawMessage, 0, len(transactions))
	var fee int64
	for _, tx := range transactions {
		data, err := json.Marshal(tx)
		if err != nil {
			panic(err)
		}
		raws = append(raws, data)
		fee += tx.Base().Fee
	}
	block := lto.Block{
		Height:           height,
		Signature:        GenericSignature(height),
		Generator:        GenericAddress(9),
		Timestamp:        GenericTimestamp,
		Fee:              fee,
		TransactionCount: uint64(len(transactions)),
		Transactions:     raws,
	}
	return &block
}

// GenericUnsigned returns the hex-encoded body of the generic transfer.
func GenericUnsigned() string {
	body, err := wire.Serialize(GenericTransfer)
	if err != nil {
		panic(err)
	}
	return hex.EncodeToString(body)
}

// GenericSigned returns the generic transfer with its identifier and a valid
// proof by the generic key.
func GenericSigned() lto.Transfer {
	body, err := wire.Serialize(GenericTransfer)
	if err != nil {
		panic(err)
	}
	signed := GenericTransfer
	signed.ID = wire.ID(body)
	signed.Proofs = []string{base58.Encode(ed25519.Sign(GenericPrivateKey, body))}
	return signed
}
