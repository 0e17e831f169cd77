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

	"golang.org/x/sync/errgroup"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
)

// Shares of a block's net fee pool, in tenths, paid to the generator of the
// block and to the generator of the next block.
const (
	shareCurrent  = 4
	sharePrevious = 6
)

// reward pays the block generator 40% of the net fees of its own block and 60%
// of the net fees of the previous block. The first block has no previous block.
func (c *Converter) reward(ctx context.Context, ops *operations, reward lto.Reward, scope Scope) error {

	confirmed, ok := scope.(Confirmed)
	if !ok {
		return failure.UnsupportedTransaction{
			Code:        int(lto.TypeReward),
			Description: failure.NewDescription(rewardUnscoped),
		}
	}
	height := reward.Height
	if height == 0 {
		height = confirmed.Height
	}

	var current, previous *lto.Block
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		block, err := c.node.Block(ctx, height)
		if err != nil {
			return fmt.Errorf("could not get block (height: %d): %w", height, err)
		}
		current = block
		return nil
	})
	if height > 1 {
		group.Go(func() error {
			block, err := c.node.Block(ctx, height-1)
			if err != nil {
				return fmt.Errorf("could not get previous block (height: %d): %w", height-1, err)
			}
			previous = block
			return nil
		})
	}
	err := group.Wait()
	if err != nil {
		return err
	}

	if previous != nil {
		ops.add(current.Generator, c.net(previous)*sharePrevious/10)
	}
	ops.add(current.Generator, c.net(current)*shareCurrent/10)

	return nil
}

// net returns the fees of the block that are not burned. The burn is decided by
// the height of the pooled block itself, so the reward of the activation block
// pays out the pool of the previous block in full.
func (c *Converter) net(block *lto.Block) int64 {
	var burn int64
	if block.Height >= c.burnHeight {
		burn = lto.BurnPerTransaction
	}
	return block.Fee - int64(block.TransactionCount)*burn
}
