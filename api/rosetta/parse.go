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

// ParseRequest implements the request schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-6
type ParseRequest struct {
	NetworkID   identifier.Network `json:"network_identifier"`
	Signed      bool               `json:"signed"`
	Transaction string             `json:"transaction"`
}

// ParseResponse implements the response schema for /construction/parse. The
// signers are listed both in the current and in the deprecated field.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-6
type ParseResponse struct {
	Operations []object.Operation   `json:"operations"`
	SignerIDs  []identifier.Account `json:"account_identifier_signers"`
	Signers    []string             `json:"signers"`
}

// Parse implements the /construction/parse endpoint of the Rosetta Construction API.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionparse
func (c *Construction) Parse(ctx echo.Context) error {

	var req ParseRequest
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

	operations, signers, err := c.transact.Parse(ctx.Request().Context(), req.Transaction, req.Signed)
	if err != nil {
		return apiError(err)
	}

	addresses := make([]string, 0, len(signers))
	for _, signer := range signers {
		addresses = append(addresses, signer.Address)
	}

	res := ParseResponse{
		Operations: operations,
		SignerIDs:  signers,
		Signers:    addresses,
	}

	return ctx.JSON(http.StatusOK, res)
}
