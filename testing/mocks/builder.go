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

type Builder struct {
	TransferFunc func(recipient string, amount int64, senderPublicKey string) lto.Transfer
	RebuildFunc  func(fields lto.Transfer) lto.Transfer
}

func BaselineBuilder(t *testing.T) *Builder {
	t.Helper()

	b := Builder{
		TransferFunc: func(recipient string, amount int64, senderPublicKey string) lto.Transfer {
			return GenericTransfer
		},
		RebuildFunc: func(fields lto.Transfer) lto.Transfer {
			return GenericTransfer
		},
	}

	return &b
}

func (b *Builder) Transfer(recipient string, amount int64, senderPublicKey string) lto.Transfer {
	return b.TransferFunc(recipient, amount, senderPublicKey)
}

func (b *Builder) Rebuild(fields lto.Transfer) lto.Transfer {
	return b.RebuildFunc(fields)
}
