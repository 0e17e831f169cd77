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

package rosetta_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/lto-rosetta/api/rosetta"
	"github.com/optakt/lto-rosetta/rosetta/configuration"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/meta"
	"github.com/optakt/lto-rosetta/rosetta/object"
	"github.com/optakt/lto-rosetta/testing/mocks"
)

func TestMain(m *testing.M) {
	rosetta.EnableSmartCodes()
	os.Exit(m.Run())
}

func setupRecorder(t *testing.T, endpoint string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var data []byte
	switch b := body.(type) {
	case []byte:
		data = b
	default:
		var err error
		data, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetPath(endpoint)

	return ctx, rec
}

func checkError(t *testing.T, err error, status int, definition meta.ErrorDefinition) rosetta.Error {
	t.Helper()

	var echoErr *echo.HTTPError
	require.ErrorAs(t, err, &echoErr)
	assert.Equal(t, status, echoErr.Code)

	rosettaErr, ok := echoErr.Message.(rosetta.Error)
	require.True(t, ok)
	assert.Equal(t, definition, rosettaErr.ErrorDefinition)

	return rosettaErr
}

type endpoint struct {
	name    string
	path    string
	request interface{}
	handler func(t *testing.T, config *mocks.Configuration, validate *mocks.Validator, fail error) echo.HandlerFunc
}

func constructionHandler(call func(c *rosetta.Construction) echo.HandlerFunc, setFailure func(tr *mocks.Transactor, err error)) func(*testing.T, *mocks.Configuration, *mocks.Validator, error) echo.HandlerFunc {
	return func(t *testing.T, config *mocks.Configuration, validate *mocks.Validator, fail error) echo.HandlerFunc {
		transact := mocks.BaselineTransactor(t)
		if fail != nil {
			setFailure(transact, fail)
		}
		return call(rosetta.NewConstruction(config, validate, transact))
	}
}

func endpoints() []endpoint {
	index := mocks.GenericHeight

	return []endpoint{
		{
			name:    "derive",
			path:    "/construction/derive",
			request: rosetta.DeriveRequest{NetworkID: mocks.GenericNetwork, PublicKey: mocks.GenericPublicKey},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Derive },
				func(tr *mocks.Transactor, err error) {
					tr.DeriveAddressFunc = func(object.PublicKey) (identifier.Account, error) { return identifier.Account{}, err }
				},
			),
		},
		{
			name:    "preprocess",
			path:    "/construction/preprocess",
			request: rosetta.PreprocessRequest{NetworkID: mocks.GenericNetwork, Operations: mocks.GenericOperations},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Preprocess },
				nil,
			),
		},
		{
			name:    "metadata",
			path:    "/construction/metadata",
			request: rosetta.MetadataRequest{NetworkID: mocks.GenericNetwork},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Metadata },
				nil,
			),
		},
		{
			name:    "payloads",
			path:    "/construction/payloads",
			request: rosetta.PayloadsRequest{NetworkID: mocks.GenericNetwork, Operations: mocks.GenericOperations},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Payloads },
				func(tr *mocks.Transactor, err error) {
					tr.CompileTransferFunc = func([]object.Operation) (string, []object.SigningPayload, error) { return "", nil, err }
				},
			),
		},
		{
			name:    "parse",
			path:    "/construction/parse",
			request: rosetta.ParseRequest{NetworkID: mocks.GenericNetwork, Transaction: mocks.GenericUnsigned()},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Parse },
				func(tr *mocks.Transactor, err error) {
					tr.ParseFunc = func(context.Context, string, bool) ([]object.Operation, []identifier.Account, error) { return nil, nil, err }
				},
			),
		},
		{
			name: "combine",
			path: "/construction/combine",
			request: rosetta.CombineRequest{
				NetworkID:           mocks.GenericNetwork,
				UnsignedTransaction: mocks.GenericUnsigned(),
				Signatures:          []object.Signature{{SignatureType: "ed25519", HexBytes: "00", PublicKey: mocks.GenericPublicKey}},
			},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Combine },
				func(tr *mocks.Transactor, err error) {
					tr.AttachSignaturesFunc = func(string, []object.Signature) (string, error) { return "", err }
				},
			),
		},
		{
			name:    "hash",
			path:    "/construction/hash",
			request: rosetta.HashRequest{NetworkID: mocks.GenericNetwork, SignedTransaction: string(mocks.GenericBytes)},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Hash },
				func(tr *mocks.Transactor, err error) {
					tr.TransactionIdentifierFunc = func(string) (identifier.Transaction, error) { return identifier.Transaction{}, err }
				},
			),
		},
		{
			name:    "submit",
			path:    "/construction/submit",
			request: rosetta.SubmitRequest{NetworkID: mocks.GenericNetwork, SignedTransaction: string(mocks.GenericBytes)},
			handler: constructionHandler(
				func(c *rosetta.Construction) echo.HandlerFunc { return c.Submit },
				func(tr *mocks.Transactor, err error) {
					tr.SubmitTransactionFunc = func(context.Context, string) (identifier.Transaction, error) { return identifier.Transaction{}, err }
				},
			),
		},
		{
			name: "transaction",
			path: "/block/transaction",
			request: rosetta.TransactionRequest{
				NetworkID:     mocks.GenericNetwork,
				BlockID:       identifier.Block{Index: &index},
				TransactionID: mocks.GenericTransactionID,
			},
			handler: func(t *testing.T, config *mocks.Configuration, validate *mocks.Validator, fail error) echo.HandlerFunc {
				retrieve := mocks.BaselineRetriever(t)
				if fail != nil {
					retrieve.TransactionFunc = func(context.Context, identifier.Block, identifier.Transaction) (*object.Transaction, error) {
						return nil, fail
					}
				}
				return rosetta.NewData(config, validate, retrieve).Transaction
			},
		},
	}
}

func TestEndpoints_CommonFailures(t *testing.T) {
	for _, ep := range endpoints() {
		ep := ep
		t.Run(ep.name, func(t *testing.T) {
			t.Parallel()

			t.Run("nominal case", func(t *testing.T) {
				t.Parallel()

				handler := ep.handler(t, mocks.BaselineConfiguration(t), mocks.BaselineValidator(t), nil)
				ctx, rec := setupRecorder(t, ep.path, ep.request)

				err := handler(ctx)

				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Result().StatusCode)
			})

			t.Run("invalid encoding", func(t *testing.T) {
				t.Parallel()

				handler := ep.handler(t, mocks.BaselineConfiguration(t), mocks.BaselineValidator(t), nil)
				ctx, _ := setupRecorder(t, ep.path, []byte(`{"network_identifier":`))

				err := handler(ctx)

				checkError(t, err, http.StatusBadRequest, configuration.ErrorInvalidEncoding)
			})

			t.Run("invalid format", func(t *testing.T) {
				t.Parallel()

				validate := mocks.BaselineValidator(t)
				validate.RequestFunc = func(interface{}) error {
					return failure.InvalidFormat{Description: failure.NewDescription("invalid", failure.WithString("field", "network"))}
				}
				handler := ep.handler(t, mocks.BaselineConfiguration(t), validate, nil)
				ctx, _ := setupRecorder(t, ep.path, ep.request)

				err := handler(ctx)

				rosettaErr := checkError(t, err, http.StatusBadRequest, configuration.ErrorInvalidFormat)
				assert.Equal(t, "invalid", rosettaErr.Description)
				assert.Equal(t, "network", rosettaErr.Details["field"])
			})

			t.Run("unknown network", func(t *testing.T) {
				t.Parallel()

				config := mocks.BaselineConfiguration(t)
				config.CheckFunc = func(identifier.Network) (configuration.Network, error) {
					return configuration.Network{}, failure.UnknownNetwork{Network: "devnet", Description: failure.NewDescription("unknown")}
				}
				handler := ep.handler(t, config, mocks.BaselineValidator(t), nil)
				ctx, _ := setupRecorder(t, ep.path, ep.request)

				err := handler(ctx)

				rosettaErr := checkError(t, err, http.StatusUnprocessableEntity, configuration.ErrorUnknownNetwork)
				assert.Equal(t, "devnet", rosettaErr.Details["network"])
			})

			if ep.name == "preprocess" || ep.name == "metadata" {
				return
			}

			t.Run("unexpected failure", func(t *testing.T) {
				t.Parallel()

				handler := ep.handler(t, mocks.BaselineConfiguration(t), mocks.BaselineValidator(t), mocks.GenericError)
				ctx, _ := setupRecorder(t, ep.path, ep.request)

				err := handler(ctx)

				rosettaErr := checkError(t, err, http.StatusInternalServerError, configuration.ErrorUnknown)
				assert.True(t, rosettaErr.Retriable)
				assert.Contains(t, rosettaErr.Details["error"], mocks.GenericError.Error())
			})
		})
	}
}
