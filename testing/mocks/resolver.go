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
	"testing"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

type Resolver struct {
	DeriveFunc     func(key object.PublicKey) (string, error)
	FromBase58Func func(key string) (string, error)
	SenderFunc     func(header lto.Header) (string, error)
	ValidFunc      func(address string) bool
}

func BaselineResolver(t *testing.T) *Resolver {
	t.Helper()

	r := Resolver{
		DeriveFunc: func(key object.PublicKey) (string, error) {
			return GenericSender, nil
		},
		FromBase58Func: func(key string) (string, error) {
			return GenericSender, nil
		},
		SenderFunc: func(header lto.Header) (string, error) {
			if header.Sender != "" {
				return header.Sender, nil
			}
			return GenericSender, nil
		},
		ValidFunc: func(address string) bool {
			return true
		},
	}

	return &r
}

func (r *Resolver) Derive(key object.PublicKey) (string, error) {
	return r.DeriveFunc(key)
}

func (r *Resolver) FromBase58(key string) (string, error) {
	return r.FromBase58Func(key)
}

func (r *Resolver) Sender(header lto.Header) (string, error) {
	return r.SenderFunc(header)
}

func (r *Resolver) Valid(address string) bool {
	return r.ValidFunc(address)
}
