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

package node_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/node"
)

func testNode(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/blocks/at/42", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"height":42,"signature":"sig42","generator":"gen","fee":300000000,"transactionCount":3}`)
	})
	mux.HandleFunc("/blocks/last", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"height":100,"signature":"sig100","generator":"gen","fee":0,"transactionCount":0}`)
	})
	mux.HandleFunc("/transactions/info/L1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"L1","type":8,"sender":"X","recipient":"R","amount":500,"fee":100000,"height":40}`)
	})
	mux.HandleFunc("/transactions/info/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":311,"message":"transactions does not exist"}`)
	})
	mux.HandleFunc("/transactions/broadcast", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"id":"T1"}` {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":1,"message":"invalid signature"}`)
			return
		}
		_, _ = io.WriteString(w, `{"id":"T1","type":4}`)
	})
	mux.HandleFunc("/blocks/at/7", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{"height":7}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestClient(t *testing.T) {
	server := testNode(t)

	client, err := node.New(server.URL+"/", node.WithTimeout(time.Second), node.WithCacheSize(1<<20))
	require.NoError(t, err)

	t.Run("block", func(t *testing.T) {
		t.Parallel()

		block, err := client.Block(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), block.Height)
		assert.Equal(t, "sig42", block.Signature)
		assert.Equal(t, int64(300000000), block.Fee)
		assert.Equal(t, uint64(3), block.TransactionCount)
	})

	t.Run("last block", func(t *testing.T) {
		t.Parallel()

		block, err := client.Last(context.Background())

		require.NoError(t, err)
		assert.Equal(t, uint64(100), block.Height)
	})

	t.Run("transaction", func(t *testing.T) {
		t.Parallel()

		tx, err := client.Transaction(context.Background(), "L1")

		require.NoError(t, err)
		require.IsType(t, lto.Lease{}, tx)
		lease := tx.(lto.Lease)
		assert.Equal(t, "R", lease.Recipient)
		assert.Equal(t, int64(500), lease.Amount)
		assert.Equal(t, uint64(40), lease.Height)
	})

	t.Run("handles missing transaction", func(t *testing.T) {
		t.Parallel()

		_, err := client.Transaction(context.Background(), "missing")

		assert.ErrorIs(t, err, lto.ErrNotFound)
	})

	t.Run("broadcast", func(t *testing.T) {
		t.Parallel()

		id, err := client.Broadcast(context.Background(), []byte(`{"id":"T1"}`))

		require.NoError(t, err)
		assert.Equal(t, "T1", id)
	})

	t.Run("handles rejected broadcast", func(t *testing.T) {
		t.Parallel()

		_, err := client.Broadcast(context.Background(), []byte(`{"id":"T2"}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid signature")
	})
}

func TestClient_Timeout(t *testing.T) {
	server := testNode(t)

	client, err := node.New(server.URL, node.WithTimeout(10*time.Millisecond))
	require.NoError(t, err)

	_, err = client.Block(context.Background(), 7)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFallback(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)
	working := testNode(t)

	primary, err := node.New(broken.URL)
	require.NoError(t, err)
	reference, err := node.New(working.URL)
	require.NoError(t, err)

	t.Run("falls back to reference node", func(t *testing.T) {
		t.Parallel()

		fallback := node.NewFallback(primary, reference)

		block, err := fallback.Block(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "sig42", block.Signature)

		last, err := fallback.Last(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(100), last.Height)

		tx, err := fallback.Transaction(context.Background(), "L1")
		require.NoError(t, err)
		assert.Equal(t, "L1", tx.Base().ID)
	})

	t.Run("aggregates errors", func(t *testing.T) {
		t.Parallel()

		fallback := node.NewFallback(primary, reference)

		_, err := fallback.Transaction(context.Background(), "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, lto.ErrNotFound)
		assert.Contains(t, err.Error(), "2 errors occurred")
	})
}
