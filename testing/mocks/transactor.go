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
	"context"
	"testing"

	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

type Transactor struct {
	DeriveAddressFunc         func(key object.PublicKey) (identifier.Account, error)
	CompileTransferFunc       func(operations []object.Operation) (string, []object.SigningPayload, error)
	ParseFunc                 func(ctx context.Context, payload string, signed bool) ([]object.Operation, []identifier.Account, error)
	AttachSignaturesFunc      func(unsigned string, signatures []object.Signature) (string, error)
	TransactionIdentifierFunc func(signed string) (identifier.Transaction, error)
	SubmitTransactionFunc     func(ctx context.Context, signed string) (identifier.Transaction, error)
}

func BaselineTransactor(t *testing.T) *Transactor {
	t.Helper()

	tr := Transactor{
		DeriveAddressFunc: func(key object.PublicKey) (identifier.Account, error) {
			return identifier.Account{Address: GenericSender}, nil
		},
		CompileTransferFunc: func(operations []object.Operation) (string, []object.SigningPayload, error) {
			payload := object.SigningPayload{
				Address:   GenericSender,
				AccountID: identifier.Account{Address: GenericSender},
				HexBytes:  GenericUnsigned(),
			}
			return GenericUnsigned(), []object.SigningPayload{payload}, nil
		},
		ParseFunc: func(ctx context.Context, payload string, signed bool) ([]object.Operation, []identifier.Account, error) {
			return GenericOperations, []identifier.Account{{Address: GenericSender}}, nil
		},
		AttachSignaturesFunc: func(unsigned string, signatures []object.Signature) (string, error) {
			return string(GenericBytes), nil
		},
		TransactionIdentifierFunc: func(signed string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
		SubmitTransactionFunc: func(ctx context.Context, signed string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
	}

	return &tr
}

func (t *Transactor) DeriveAddress(key object.PublicKey) (identifier.Account, error) {
	return t.DeriveAddressFunc(key)
}

func (t *Transactor) CompileTransfer(operations []object.Operation) (string, []object.SigningPayload, error) {
	return t.CompileTransferFunc(operations)
}

func (t *Transactor) Parse(ctx context.Context, payload string, signed bool) ([]object.Operation, []identifier.Account, error) {
	return t.ParseFunc(ctx, payload, signed)
}

func (t *Transactor) AttachSignatures(unsigned string, signatures []object.Signature) (string, error) {
	return t.AttachSignaturesFunc(unsigned, signatures)
}

func (t *Transactor) TransactionIdentifier(signed string) (identifier.Transaction, error) {
	return t.TransactionIdentifierFunc(signed)
}

func (t *Transactor) SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error) {
	return t.SubmitTransactionFunc(ctx, signed)
}
