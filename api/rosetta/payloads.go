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

package rosetta

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

// PayloadsRequest implements the request schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-4
type PayloadsRequest struct {
	NetworkID  identifier.Network     `json:"network_identifier"`
	Operations []object.Operation     `json:"operations"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// PayloadsResponse implements the response schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-4
type PayloadsResponse struct {
	Transaction string                  `json:"unsigned_transaction"`
	Payloads    []object.SigningPayload `json:"payloads"`
}

// Payloads implements the /construction/payloads endpoint of the Rosetta Construction API.
// It builds an unsigned transfer from the given operations and returns it
// together with the payload that the sender needs to sign.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpayloads
func (c *Construction) Payloads(ctx echo.Context) error {

	var req PayloadsRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidEncoding(err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return apiError(err)
	}

	_, err = c.config.Check(req.NetworkID)
	if err != nil {
		return apiError(err)
	}

	unsigned, payloads, err := c.transact.CompileTransfer(req.Operations)
	if err != nil {
		return apiError(err)
	}

	res := PayloadsResponse{
		Transaction: unsigned,
		Payloads:    payloads,
	}

	return ctx.JSON(http.StatusOK, res)
}
