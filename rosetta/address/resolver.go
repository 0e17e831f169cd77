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

package address

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

const (
	keySize      = 32
	hashSize     = 20
	checksumSize = 4
)

// Resolver derives account addresses from public keys for one chain.
type Resolver struct {
	chainID byte
}

// New creates a resolver for the chain with the given chain ID.
func New(chainID byte) *Resolver {
	r := Resolver{
		chainID: chainID,
	}
	return &r
}

// Derive returns the address of the owner of the given public key. Only keys on
// the edwards25519 curve are supported.
func (r *Resolver) Derive(key object.PublicKey) (string, error) {

	if key.CurveType != lto.CurveEdwards25519 {
		return "", failure.UnsupportedCurve{
			Curve:       key.CurveType,
			Description: failure.NewDescription(curveUnsupported, failure.WithString("curve_want", lto.CurveEdwards25519)),
		}
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(key.HexBytes, "0x"))
	if err != nil {
		return "", failure.InvalidKey{
			Key:         key.HexBytes,
			Description: failure.NewDescription(keyNotHex, failure.WithErr(err)),
		}
	}

	return r.FromBytes(raw)
}

// FromBytes returns the address of the owner of the given raw public key.
func (r *Resolver) FromBytes(key []byte) (string, error) {

	if len(key) != keySize {
		return "", failure.InvalidKey{
			Key: hex.EncodeToString(key),
			Description: failure.NewDescription(keyLength,
				failure.WithInt64("have", int64(len(key))),
				failure.WithInt64("want", keySize),
			),
		}
	}

	hash := secureHash(key)

	addr := make([]byte, 0, 2+hashSize+checksumSize)
	addr = append(addr, lto.AddressVersion, r.chainID)
	addr = append(addr, hash[:hashSize]...)
	checksum := secureHash(addr)
	addr = append(addr, checksum[:checksumSize]...)

	return base58.Encode(addr), nil
}

// FromBase58 returns the address of the owner of the given base58-encoded
// public key, which is how keys are embedded into transactions.
func (r *Resolver) FromBase58(key string) (string, error) {
	raw, err := base58.Decode(key)
	if err != nil {
		return "", failure.InvalidKey{
			Key:         key,
			Description: failure.NewDescription(keyNotBase58, failure.WithErr(err)),
		}
	}
	return r.FromBytes(raw)
}

// Sender returns the address of the sender of the given transaction. The
// address resolved by the node is used when present.
func (r *Resolver) Sender(header lto.Header) (string, error) {
	if header.Sender != "" {
		return header.Sender, nil
	}
	if header.SenderPublicKey == "" {
		return "", fmt.Errorf("transaction has neither sender nor sender public key")
	}
	return r.FromBase58(header.SenderPublicKey)
}

// Valid checks whether the given address is a well-formed address of this
// chain.
func (r *Resolver) Valid(address string) bool {
	raw, err := base58.Decode(address)
	if err != nil {
		return false
	}
	if len(raw) != 2+hashSize+checksumSize {
		return false
	}
	if raw[0] != lto.AddressVersion || raw[1] != r.chainID {
		return false
	}
	checksum := secureHash(raw[:2+hashSize])
	for i := 0; i < checksumSize; i++ {
		if raw[2+hashSize+i] != checksum[i] {
			return false
		}
	}
	return true
}

func secureHash(data []byte) [sha256.Size]byte {
	inner := blake2b.Sum256(data)
	return sha256.Sum256(inner[:])
}

const (
	curveUnsupported = "only edwards25519 public keys are supported"
	keyNotHex        = "public key is not a valid hex-encoded string"
	keyNotBase58     = "public key is not a valid base58-encoded string"
	keyLength        = "public key has invalid length"
)
