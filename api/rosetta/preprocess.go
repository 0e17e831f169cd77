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

// PreprocessRequest implements the request schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type PreprocessRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
}

// PreprocessResponse implements the response schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type PreprocessResponse struct {
	Options map[string]interface{} `json:"options"`
}

// Preprocess implements the /construction/preprocess endpoint of the Rosetta Construction API.
// Transfers need no data from the network, so the options are always empty.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpreprocess
func (c *Construction) Preprocess(ctx echo.Context) error {

	var req PreprocessRequest
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

	res := PreprocessResponse{
		Options: map[string]interface{}{},
	}

	return ctx.JSON(http.StatusOK, res)
}
