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

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/optakt/lto-rosetta/models/lto"
)

// Sizes of the fixed-length fields of a transfer body.
const (
	PublicKeySize = 32
	AddressSize   = 26

	headerSize   = 2
	transferSize = headerSize + PublicKeySize + 8 + 8 + 8 + AddressSize + 2
)

var ErrTruncated = errors.New("truncated transaction body")

// Serialize encodes the body of a transfer transaction into the binary layout
// that is signed and hashed by the chain.
func Serialize(tx lto.Transfer) ([]byte, error) {

	if tx.Version != lto.TransferVersion {
		return nil, fmt.Errorf("unsupported transfer version (version: %d)", tx.Version)
	}

	key, err := base58.Decode(tx.SenderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not decode sender public key: %w", err)
	}
	if len(key) != PublicKeySize {
		return nil, fmt.Errorf("invalid sender public key length (have: %d, want: %d)", len(key), PublicKeySize)
	}

	recipient, err := base58.Decode(tx.Recipient)
	if err != nil {
		return nil, fmt.Errorf("could not decode recipient: %w", err)
	}
	if len(recipient) != AddressSize {
		return nil, fmt.Errorf("invalid recipient length (have: %d, want: %d)", len(recipient), AddressSize)
	}

	var attachment []byte
	if tx.Attachment != "" {
		attachment, err = base58.Decode(tx.Attachment)
		if err != nil {
			return nil, fmt.Errorf("could not decode attachment: %w", err)
		}
	}
	if len(attachment) > math.MaxUint16 {
		return nil, fmt.Errorf("attachment too long (length: %d)", len(attachment))
	}

	if tx.Amount < 0 {
		return nil, fmt.Errorf("negative amount (amount: %d)", tx.Amount)
	}
	if tx.Fee < 0 {
		return nil, fmt.Errorf("negative fee (fee: %d)", tx.Fee)
	}

	body := make([]byte, 0, transferSize+len(attachment))
	body = append(body, byte(lto.TypeTransfer), tx.Version)
	body = append(body, key...)
	body = appendUint64(body, uint64(tx.Timestamp))
	body = appendUint64(body, uint64(tx.Amount))
	body = appendUint64(body, uint64(tx.Fee))
	body = append(body, recipient...)
	body = appendUint16(body, uint16(len(attachment)))
	body = append(body, attachment...)

	return body, nil
}

// Parse decodes a binary transaction body. Only version 2 transfers are
// supported.
func Parse(body []byte) (lto.Transfer, error) {

	if len(body) < headerSize {
		return lto.Transfer{}, ErrTruncated
	}

	typ := lto.Type(body[0])
	if typ != lto.TypeTransfer {
		return lto.Transfer{}, fmt.Errorf("%w (type: %d)", lto.ErrUnsupportedType, typ)
	}
	version := body[1]
	if version != lto.TransferVersion {
		return lto.Transfer{}, fmt.Errorf("unsupported transfer version (version: %d)", version)
	}
	if len(body) < transferSize {
		return lto.Transfer{}, ErrTruncated
	}

	offset := headerSize
	key := body[offset : offset+PublicKeySize]
	offset += PublicKeySize
	timestamp := binary.BigEndian.Uint64(body[offset:])
	offset += 8
	amount := binary.BigEndian.Uint64(body[offset:])
	offset += 8
	fee := binary.BigEndian.Uint64(body[offset:])
	offset += 8
	recipient := body[offset : offset+AddressSize]
	offset += AddressSize
	length := int(binary.BigEndian.Uint16(body[offset:]))
	offset += 2
	if len(body) != offset+length {
		return lto.Transfer{}, fmt.Errorf("invalid attachment length (have: %d, want: %d)", len(body)-offset, length)
	}
	attachment := body[offset:]

	if amount > math.MaxInt64 || fee > math.MaxInt64 || timestamp > math.MaxInt64 {
		return lto.Transfer{}, fmt.Errorf("numeric field out of range")
	}

	tx := lto.Transfer{
		Header: lto.Header{
			ID:              ID(body),
			TypeCode:        lto.TypeTransfer,
			Version:         version,
			SenderPublicKey: base58.Encode(key),
			Fee:             int64(fee),
			Timestamp:       int64(timestamp),
		},
		Recipient: base58.Encode(recipient),
		Amount:    int64(amount),
	}
	if len(attachment) > 0 {
		tx.Attachment = base58.Encode(attachment)
	}

	return tx, nil
}

// ID returns the identifier the chain assigns to a transaction with the given
// body.
func ID(body []byte) string {
	hash := blake2b.Sum256(body)
	return base58.Encode(hash[:])
}

func appendUint64(b []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}

func appendUint16(b []byte, v uint16) []byte {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return append(b, buf[:]...)
}
