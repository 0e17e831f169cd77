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

// Transaction is a decoded chain transaction. The set of implementations is
// closed: only the types of this package satisfy it.
type Transaction interface {
	Type() Type
	Base() Header
	sealed()
}

// Header holds the fields shared by all transaction kinds. The sender address
// is only present when the node already resolved it; otherwise it has to be
// derived from the sender public key.
type Header struct {
	ID              string   `json:"id,omitempty"`
	TypeCode        Type     `json:"type"`
	Version         uint8    `json:"version,omitempty"`
	Sender          string   `json:"sender,omitempty"`
	SenderPublicKey string   `json:"senderPublicKey,omitempty"`
	Fee             int64    `json:"fee"`
	Timestamp       int64    `json:"timestamp,omitempty"`
	Proofs          []string `json:"proofs,omitempty"`
	Height          uint64   `json:"height,omitempty"`
}

// Base returns the shared transaction fields.
func (h Header) Base() Header {
	return h
}

func (h Header) sealed() {}

// Reward is the block-level pseudo-transaction that pays the fee share of a
// block to its generator.
type Reward struct {
	Header
}

func (Reward) Type() Type { return TypeReward }

type Genesis struct {
	Header
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

func (Genesis) Type() Type { return TypeGenesis }

type Transfer struct {
	Header
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	Attachment string `json:"attachment"`
}

func (Transfer) Type() Type { return TypeTransfer }

type Lease struct {
	Header
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

func (Lease) Type() Type { return TypeLease }

type CancelLease struct {
	Header
	LeaseID string `json:"leaseId"`
}

func (CancelLease) Type() Type { return TypeCancelLease }

// Payment is a single entry of a mass transfer.
type Payment struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

type MassTransfer struct {
	Header
	Transfers  []Payment `json:"transfers"`
	Attachment string    `json:"attachment,omitempty"`
}

func (MassTransfer) Type() Type { return TypeMassTransfer }

type Data struct {
	Header
	Entries []DataEntry `json:"data,omitempty"`
}

// DataEntry is a single key/value pair of a data transaction.
type DataEntry struct {
	Key   string      `json:"key"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

func (Data) Type() Type { return TypeData }

type SetScript struct {
	Header
	Script string `json:"script,omitempty"`
}

func (SetScript) Type() Type { return TypeSetScript }

type Anchor struct {
	Header
	Anchors []string `json:"anchors,omitempty"`
}

func (Anchor) Type() Type { return TypeAnchor }

type Association struct {
	Header
	Recipient       string `json:"recipient"`
	AssociationType int64  `json:"associationType"`
	Hash            string `json:"hash,omitempty"`
}

func (Association) Type() Type { return TypeAssociation }

type RevokeAssociation struct {
	Header
	Recipient       string `json:"recipient"`
	AssociationType int64  `json:"associationType"`
	Hash            string `json:"hash,omitempty"`
}

func (RevokeAssociation) Type() Type { return TypeRevokeAssociation }

type Sponsor struct {
	Header
	Recipient string `json:"recipient"`
}

func (Sponsor) Type() Type { return TypeSponsor }

type CancelSponsor struct {
	Header
	Recipient string `json:"recipient"`
}

func (CancelSponsor) Type() Type { return TypeCancelSponsor }
