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
)

type Ledger struct {
	ResolveFunc func(address string, height uint64) (string, bool, error)
	ApplyFunc   func(effects ...lto.Effect) error
}

// BaselineLedger returns a ledger without any sponsorships.
func BaselineLedger(t *testing.T) *Ledger {
	t.Helper()

	l := Ledger{
		ResolveFunc: func(address string, height uint64) (string, bool, error) {
			return "", false, nil
		},
		ApplyFunc: func(effects ...lto.Effect) error {
			return nil
		},
	}

	return &l
}

func (l *Ledger) Resolve(address string, height uint64) (string, bool, error) {
	return l.ResolveFunc(address, height)
}

func (l *Ledger) Apply(effects ...lto.Effect) error {
	return l.ApplyFunc(effects...)
}
