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
	"encoding/json"
	"fmt"
)

// Decode decodes the JSON representation of a transaction, as returned by the
// node API, into the variant matching its type code.
func Decode(data []byte) (Transaction, error) {

	var probe struct {
		Type *Type `json:"type"`
	}
	err := json.Unmarshal(data, &probe)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction type: %w", err)
	}
	if probe.Type == nil {
		return nil, fmt.Errorf("missing transaction type")
	}

	var tx Transaction
	switch *probe.Type {
	case TypeReward:
		tx, err = decode(data, &Reward{})
	case TypeGenesis:
		tx, err = decode(data, &Genesis{})
	case TypeTransfer:
		tx, err = decode(data, &Transfer{})
	case TypeLease:
		tx, err = decode(data, &Lease{})
	case TypeCancelLease:
		tx, err = decodeCancelLease(data)
	case TypeMassTransfer:
		tx, err = decode(data, &MassTransfer{})
	case TypeData:
		tx, err = decode(data, &Data{})
	case TypeSetScript:
		tx, err = decode(data, &SetScript{})
	case TypeAnchor:
		tx, err = decode(data, &Anchor{})
	case TypeAssociation:
		tx, err = decode(data, &Association{})
	case TypeRevokeAssociation:
		tx, err = decode(data, &RevokeAssociation{})
	case TypeSponsor:
		tx, err = decode(data, &Sponsor{})
	case TypeCancelSponsor:
		tx, err = decode(data, &CancelSponsor{})
	default:
		return nil, fmt.Errorf("%w (type: %d)", ErrUnsupportedType, *probe.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %s transaction: %w", *probe.Type, err)
	}

	return tx, nil
}

// pointee is implemented by pointers to the transaction variants, so that the
// decoded value can be returned by value.
type pointee interface {
	value() Transaction
}

func (r *Reward) value() Transaction            { return *r }
func (g *Genesis) value() Transaction           { return *g }
func (t *Transfer) value() Transaction          { return *t }
func (l *Lease) value() Transaction             { return *l }
func (c *CancelLease) value() Transaction       { return *c }
func (m *MassTransfer) value() Transaction      { return *m }
func (d *Data) value() Transaction              { return *d }
func (s *SetScript) value() Transaction         { return *s }
func (a *Anchor) value() Transaction            { return *a }
func (a *Association) value() Transaction       { return *a }
func (r *RevokeAssociation) value() Transaction { return *r }
func (s *Sponsor) value() Transaction           { return *s }
func (c *CancelSponsor) value() Transaction     { return *c }

func decode(data []byte, tx pointee) (Transaction, error) {
	err := json.Unmarshal(data, tx)
	if err != nil {
		return nil, err
	}
	return tx.value(), nil
}

// Cancel lease transactions returned by the node embed the cancelled lease
// instead of only referencing it, depending on the node version.
func decodeCancelLease(data []byte) (Transaction, error) {

	var tx struct {
		CancelLease
		Lease *struct {
			ID string `json:"id"`
		} `json:"lease"`
	}
	err := json.Unmarshal(data, &tx)
	if err != nil {
		return nil, err
	}

	cancel := tx.CancelLease
	if cancel.LeaseID == "" && tx.Lease != nil {
		cancel.LeaseID = tx.Lease.ID
	}

	return cancel, nil
}
