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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/dgraph-io/ristretto"

	"github.com/optakt/lto-rosetta/models/lto"
)

// Client reads blocks and transactions from the REST API of an LTO node, and
// broadcasts signed transactions to it.
type Client struct {
	api     string
	http    *http.Client
	cache   *ristretto.Cache
	cfg     Config
	highest uint64
}

// New creates a client for the node API at the given base URL.
func New(api string, options ...func(*Config)) (*Client, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends ten times as many counters as items in a full cache;
	// node responses are a few kilobytes on average.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) / 2000 * 10,
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	c := Client{
		api:   strings.TrimRight(api, "/"),
		http:  &http.Client{},
		cache: cache,
		cfg:   cfg,
	}

	return &c, nil
}

// Block returns the block at the given height. Blocks below the highest height
// seen so far are final and are cached.
func (c *Client) Block(ctx context.Context, height uint64) (*lto.Block, error) {

	key := fmt.Sprintf("block/%d", height)
	cached, ok := c.cache.Get(key)
	if ok {
		return cached.(*lto.Block), nil
	}

	var block lto.Block
	size, err := c.get(ctx, fmt.Sprintf("/blocks/at/%d", height), &block)
	if err != nil {
		return nil, fmt.Errorf("could not get block (height: %d): %w", height, err)
	}

	if height < atomic.LoadUint64(&c.highest) {
		c.cache.Set(key, &block, int64(size))
	}

	return &block, nil
}

// Last returns the last block of the chain.
func (c *Client) Last(ctx context.Context) (*lto.Block, error) {

	var block lto.Block
	_, err := c.get(ctx, "/blocks/last", &block)
	if err != nil {
		return nil, fmt.Errorf("could not get last block: %w", err)
	}

	for {
		highest := atomic.LoadUint64(&c.highest)
		if block.Height <= highest || atomic.CompareAndSwapUint64(&c.highest, highest, block.Height) {
			break
		}
	}

	return &block, nil
}

// Transaction returns the confirmed transaction with the given identifier.
func (c *Client) Transaction(ctx context.Context, id string) (lto.Transaction, error) {

	key := "tx/" + id
	cached, ok := c.cache.Get(key)
	if ok {
		return cached.(lto.Transaction), nil
	}

	var raw json.RawMessage
	size, err := c.get(ctx, "/transactions/info/"+id, &raw)
	if err != nil {
		return nil, fmt.Errorf("could not get transaction (id: %s): %w", id, err)
	}

	tx, err := lto.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction (id: %s): %w", id, err)
	}

	if tx.Base().Height > 0 {
		c.cache.Set(key, tx, int64(size))
	}

	return tx, nil
}

// Broadcast sends the given signed transaction, in its JSON representation, to
// the node and returns the identifier it was accepted under.
func (c *Client) Broadcast(ctx context.Context, signed []byte) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.api+"/transactions/broadcast", bytes.NewReader(signed))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var res struct {
		ID string `json:"id"`
	}
	_, err = c.do(req, &res)
	if err != nil {
		return "", fmt.Errorf("could not broadcast transaction: %w", err)
	}

	return res.ID, nil
}

func (c *Client) get(ctx context.Context, path string, value interface{}) (int, error) {

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.api+path, nil)
	if err != nil {
		return 0, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, value)
}

func (c *Client) do(req *http.Request, value interface{}) (int, error) {

	res, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("could not execute request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("could not read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if res.StatusCode == http.StatusNotFound {
			return 0, fmt.Errorf("%w (status: %d, message: %s)", lto.ErrNotFound, res.StatusCode, apiErr.Message)
		}
		return 0, fmt.Errorf("unexpected status (status: %d, message: %s)", res.StatusCode, apiErr.Message)
	}

	err = json.Unmarshal(body, value)
	if err != nil {
		return 0, fmt.Errorf("could not decode response: %w", err)
	}

	return len(body), nil
}
