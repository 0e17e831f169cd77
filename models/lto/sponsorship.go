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

// Sponsorship records that, as of the given height, fees owed by the recipient
// are paid by the sponsor.
type Sponsorship struct {
	Recipient string `json:"recipient" cbor:"1,keyasint"`
	Sponsor   string `json:"sponsor" cbor:"2,keyasint"`
	Height    uint64 `json:"height" cbor:"3,keyasint"`
}

// EffectKind is the kind of change a transaction makes to the sponsorships.
type EffectKind uint8

const (
	EffectGrant EffectKind = iota + 1
	EffectRevoke
)

// Effect is a change to the sponsorships caused by a confirmed transaction.
type Effect struct {
	Kind      EffectKind
	Recipient string
	Sponsor   string
	Height    uint64
}

// Grant creates the effect of a sponsor transaction.
func Grant(recipient string, sponsor string, height uint64) Effect {
	return Effect{Kind: EffectGrant, Recipient: recipient, Sponsor: sponsor, Height: height}
}

// Revoke creates the effect of a cancel sponsor transaction.
func Revoke(sponsor string, recipient string) Effect {
	return Effect{Kind: EffectRevoke, Recipient: recipient, Sponsor: sponsor}
}
