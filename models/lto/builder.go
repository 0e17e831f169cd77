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

package lto

import (
	"time"
)

// TransferVersion is the version of the transfer transactions we build.
const TransferVersion = 2

// Builder creates transfer transactions with the default parameters of the
// construction API.
type Builder struct {
	fee   int64
	clock func() time.Time
}

// BuilderOption configures a builder.
type BuilderOption func(*Builder)

// WithFee sets the fee attached to built transfers.
func WithFee(fee int64) BuilderOption {
	return func(b *Builder) {
		b.fee = fee
	}
}

// WithClock sets the clock used to timestamp built transfers.
func WithClock(clock func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.clock = clock
	}
}

// NewBuilder creates a transfer builder.
func NewBuilder(options ...BuilderOption) *Builder {

	b := Builder{
		fee:   DefaultTransferFee,
		clock: time.Now,
	}
	for _, option := range options {
		option(&b)
	}

	return &b
}

// Transfer creates a new unsigned transfer of the given amount from the owner of
// the public key to the recipient.
func (b *Builder) Transfer(recipient string, amount int64, senderPublicKey string) Transfer {
	tx := Transfer{
		Header: Header{
			TypeCode:        TypeTransfer,
			Version:         TransferVersion,
			SenderPublicKey: senderPublicKey,
			Fee:             b.fee,
			Timestamp:       b.clock().UnixNano() / int64(time.Millisecond),
		},
		Recipient: recipient,
		Amount:    amount,
	}
	return tx
}

// Rebuild creates a transfer from a complete set of fields, dropping anything
// that is not part of the signed body.
func (b *Builder) Rebuild(fields Transfer) Transfer {
	tx := Transfer{
		Header: Header{
			TypeCode:        TypeTransfer,
			Version:         TransferVersion,
			SenderPublicKey: fields.SenderPublicKey,
			Fee:             fields.Fee,
			Timestamp:       fields.Timestamp,
		},
		Recipient:  fields.Recipient,
		Amount:     fields.Amount,
		Attachment: fields.Attachment,
	}
	return tx
}
