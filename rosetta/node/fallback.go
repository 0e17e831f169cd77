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

package node

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/lto-rosetta/models/lto"
)

// Reader is a source of blocks and transactions.
type Reader interface {
	Block(ctx context.Context, height uint64) (*lto.Block, error)
	Last(ctx context.Context) (*lto.Block, error)
	Transaction(ctx context.Context, id string) (lto.Transaction, error)
}

// Fallback reads from a list of readers, going through them in order until one
// of them succeeds. If all of them fail, a multi-error with all errors is
// returned.
type Fallback struct {
	readers []Reader
}

// NewFallback creates a reader falling back through the given readers.
func NewFallback(readers ...Reader) *Fallback {
	f := Fallback{
		readers: readers,
	}
	return &f
}

func (f *Fallback) Block(ctx context.Context, height uint64) (*lto.Block, error) {
	var errs error
	for _, reader := range f.readers {
		block, err := reader.Block(ctx, height)
		if err == nil {
			return block, nil
		}
		errs = multierror.Append(errs, err)
	}
	return nil, errs
}

func (f *Fallback) Last(ctx context.Context) (*lto.Block, error) {
	var errs error
	for _, reader := range f.readers {
		block, err := reader.Last(ctx)
		if err == nil {
			return block, nil
		}
		errs = multierror.Append(errs, err)
	}
	return nil, errs
}

func (f *Fallback) Transaction(ctx context.Context, id string) (lto.Transaction, error) {
	var errs error
	for _, reader := range f.readers {
		tx, err := reader.Transaction(ctx, id)
		if err == nil {
			return tx, nil
		}
		errs = multierror.Append(errs, err)
	}
	return nil, errs
}
