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

import (
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// Transactor implements the steps of the construction flow: it builds unsigned
// transfers from operations, attaches signatures to them, identifies and
// submits signed transactions, and turns both back into operations.
type Transactor struct {
	resolve Resolver
	build   Builder
	convert Converter
	submit  Submitter
}

// New creates a new transactor.
func New(resolve Resolver, build Builder, convert Converter, submit Submitter) *Transactor {

	t := Transactor{
		resolve: resolve,
		build:   build,
		convert: convert,
		submit:  submit,
	}

	return &t
}

// DeriveAddress returns the account identifier of the owner of a public key.
func (t *Transactor) DeriveAddress(key object.PublicKey) (identifier.Account, error) {

	address, err := t.resolve.Derive(key)
	if err != nil {
		return identifier.Account{}, err
	}

	return identifier.Account{Address: address}, nil
}
