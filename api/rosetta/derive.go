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

// DeriveRequest implements the request schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-1
type DeriveRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	PublicKey object.PublicKey   `json:"public_key"`
}

// DeriveResponse implements the response schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-1
type DeriveResponse struct {
	Address   string             `json:"address"`
	AccountID identifier.Account `json:"account_identifier"`
}

// Derive implements the /construction/derive endpoint of the Rosetta Construction API.
// It returns the address of the account owning the given public key.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionderive
func (c *Construction) Derive(ctx echo.Context) error {

	var req DeriveRequest
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

	account, err := c.transact.DeriveAddress(req.PublicKey)
	if err != nil {
		return apiError(err)
	}

	res := DeriveResponse{
		Address:   account.Address,
		AccountID: account,
	}

	return ctx.JSON(http.StatusOK, res)
}
