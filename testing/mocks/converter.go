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

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/converter"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

type Converter struct {
	EffectsFunc    func(tx lto.Transaction, scope converter.Scope) ([]lto.Effect, error)
	OperationsFunc func(ctx context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error)
}

func BaselineConverter(t *testing.T) *Converter {
	t.Helper()

	c := Converter{
		EffectsFunc: func(tx lto.Transaction, scope converter.Scope) ([]lto.Effect, error) {
			return nil, nil
		},
		OperationsFunc: func(ctx context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error) {
			return GenericOperations, nil
		},
	}

	return &c
}

func (c *Converter) Effects(tx lto.Transaction, scope converter.Scope) ([]lto.Effect, error) {
	return c.EffectsFunc(tx, scope)
}

func (c *Converter) Operations(ctx context.Context, tx lto.Transaction, scope converter.Scope) ([]object.Operation, error) {
	return c.OperationsFunc(ctx, tx, scope)
}
