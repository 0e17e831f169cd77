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

package retriever

import (
	"context"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

type Node interface {
	Block(ctx context.Context, height uint64) (*lto.Block, error)
}

type Converter interface {
	Effects(tx lto.Transaction, scope converter.Scope) ([]lto.Effect, error)
	Operations(ctx context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error)
}

type Ledger interface {
	Apply(effects ...lto.Effect) error
}
