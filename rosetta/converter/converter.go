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

package converter

import (
	"context"
	"fmt"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/configuration"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Converter turns chain transactions into Rosetta operations.
type Converter struct {
	resolve    Resolver
	ledger     Ledger
	node       Node
	burnHeight uint64
	currency   identifier.Currency
}

// New creates a converter. Transaction fees are burned for blocks at or above
// the given burn activation height.
func New(resolve Resolver, ledger Ledger, node Node, burnHeight uint64) *Converter {

	c := Converter{
		resolve:    resolve,
		ledger:     ledger,
		node:       node,
		burnHeight: burnHeight,
		currency: identifier.Currency{
			Symbol:   lto.Symbol,
			Decimals: lto.Decimals,
		},
	}

	return &c
}

// Effects returns the changes the given transaction makes to the sponsorships.
// They have to be applied to the ledger before converting the transaction into
// operations. Unconfirmed transactions have no effects.
func (c *Converter) Effects(tx lto.Transaction, scope Scope) ([]lto.Effect, error) {

	confirmed, ok := scope.(Confirmed)
	if !ok {
		return nil, nil
	}

	switch t := tx.(type) {

	case lto.Sponsor:
		sender, err := c.resolve.Sender(t.Header)
		if err != nil {
			return nil, fmt.Errorf("could not resolve sender: %w", err)
		}
		return []lto.Effect{lto.Grant(t.Recipient, sender, confirmed.Height)}, nil

	case lto.CancelSponsor:
		sender, err := c.resolve.Sender(t.Header)
		if err != nil {
			return nil, fmt.Errorf("could not resolve sender: %w", err)
		}
		return []lto.Effect{lto.Revoke(sender, t.Recipient)}, nil

	default:
		return nil, nil
	}
}

// Operations returns the balance changes caused by the given transaction, in
// the order in which they are indexed.
func (c *Converter) Operations(ctx context.Context, tx lto.Transaction, scope Scope) ([]object.Operation, error) {

	ops := c.operations(tx.Type())

	var err error
	switch t := tx.(type) {

	case lto.Reward:
		err = c.reward(ctx, ops, t, scope)

	case lto.Genesis:
		ops.add(t.Recipient, t.Amount)

	case lto.Transfer:
		err = c.transfer(ops, t.Header, t.Recipient, t.Amount, scope)

	case lto.Lease:
		err = c.transfer(ops, t.Header, t.Recipient, t.Amount, scope)

	case lto.CancelLease:
		err = c.cancelLease(ctx, ops, t, scope)

	case lto.MassTransfer:
		err = c.massTransfer(ops, t, scope)

	case lto.Data:
		err = c.fee(ops, t.Header, scope)
	case lto.SetScript:
		err = c.fee(ops, t.Header, scope)
	case lto.Anchor:
		err = c.fee(ops, t.Header, scope)
	case lto.Association:
		err = c.fee(ops, t.Header, scope)
	case lto.RevokeAssociation:
		err = c.fee(ops, t.Header, scope)
	case lto.Sponsor:
		err = c.fee(ops, t.Header, scope)
	case lto.CancelSponsor:
		err = c.fee(ops, t.Header, scope)

	default:
		return nil, failure.UnsupportedTransaction{
			Code:        int(tx.Type()),
			Description: failure.NewDescription(typeUnknown),
		}
	}
	if err != nil {
		return nil, err
	}

	return ops.list, nil
}

func (c *Converter) transfer(ops *operations, header lto.Header, recipient string, amount int64, scope Scope) error {

	sender, err := c.resolve.Sender(header)
	if err != nil {
		return fmt.Errorf("could not resolve sender: %w", err)
	}
	payer, err := c.payer(sender, scope)
	if err != nil {
		return err
	}

	ops.add(recipient, amount)
	ops.add(sender, -amount)
	ops.add(payer, -header.Fee)

	return nil
}

func (c *Converter) cancelLease(ctx context.Context, ops *operations, cancel lto.CancelLease, scope Scope) error {

	sender, err := c.resolve.Sender(cancel.Header)
	if err != nil {
		return fmt.Errorf("could not resolve sender: %w", err)
	}

	tx, err := c.node.Transaction(ctx, cancel.LeaseID)
	if err != nil {
		return fmt.Errorf("could not get lease transaction (id: %s): %w", cancel.LeaseID, err)
	}
	lease, ok := tx.(lto.Lease)
	if !ok {
		return failure.UnsupportedTransaction{
			Code: int(tx.Type()),
			Description: failure.NewDescription(leaseInvalid,
				failure.WithString("lease_id", cancel.LeaseID),
			),
		}
	}

	// The lease is returned to whoever created it, which is the canceller for
	// any valid cancellation.
	owner := sender
	if lease.Sender != "" || lease.SenderPublicKey != "" {
		owner, err = c.resolve.Sender(lease.Header)
		if err != nil {
			return fmt.Errorf("could not resolve lease owner (id: %s): %w", cancel.LeaseID, err)
		}
	}

	payer, err := c.payer(sender, scope)
	if err != nil {
		return err
	}

	ops.add(owner, lease.Amount)
	ops.add(lease.Recipient, -lease.Amount)
	ops.add(payer, -cancel.Fee)

	return nil
}

func (c *Converter) massTransfer(ops *operations, mass lto.MassTransfer, scope Scope) error {

	sender, err := c.resolve.Sender(mass.Header)
	if err != nil {
		return fmt.Errorf("could not resolve sender: %w", err)
	}
	payer, err := c.payer(sender, scope)
	if err != nil {
		return err
	}

	for _, payment := range mass.Transfers {
		ops.add(payment.Recipient, payment.Amount)
		ops.add(sender, -payment.Amount)
	}
	ops.add(payer, -mass.Fee)

	return nil
}

func (c *Converter) fee(ops *operations, header lto.Header, scope Scope) error {

	sender, err := c.resolve.Sender(header)
	if err != nil {
		return fmt.Errorf("could not resolve sender: %w", err)
	}
	payer, err := c.payer(sender, scope)
	if err != nil {
		return err
	}

	ops.add(payer, -header.Fee)

	return nil
}

// payer returns the account paying the fees of the sender.
func (c *Converter) payer(sender string, scope Scope) (string, error) {

	confirmed, ok := scope.(Confirmed)
	if !ok {
		return sender, nil
	}

	sponsor, ok, err := c.ledger.Resolve(sender, confirmed.Height)
	if err != nil {
		return "", fmt.Errorf("could not resolve sponsor (address: %s): %w", sender, err)
	}
	if !ok {
		return sender, nil
	}

	return sponsor, nil
}

func (c *Converter) operations(typ lto.Type) *operations {
	ops := operations{
		typ:      typ.String(),
		status:   configuration.StatusSuccess.Status,
		currency: c.currency,
	}
	return &ops
}

// operations accumulates the operations of one transaction, assigning
// contiguous indices in the order they are added.
type operations struct {
	typ      string
	status   string
	currency identifier.Currency
	list     []object.Operation
}

func (o *operations) add(address string, amount int64) {
	op := object.Operation{
		ID:        identifier.Operation{Index: uint(len(o.list))},
		Type:      o.typ,
		Status:    o.status,
		AccountID: identifier.Account{Address: address},
		Amount:    object.NewAmount(amount, o.currency),
	}
	o.list = append(o.list, op)
}

const (
	typeUnknown    = "transaction type can not be converted into operations"
	leaseInvalid   = "cancelled transaction is not a lease"
	rewardUnscoped = "block reward requires a confirmed block"
)
