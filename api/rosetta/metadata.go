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
)

// MetadataRequest implements the request schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-3
type MetadataRequest struct {
	NetworkID identifier.Network     `json:"network_identifier"`
	Options   map[string]interface{} `json:"options"`
}

// MetadataResponse implements the response schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-3
type MetadataResponse struct {
	Metadata map[string]interface{} `json:"metadata"`
}

// Metadata implements the /construction/metadata endpoint of the Rosetta Construction API.
// LTO transactions carry no nonce or reference block, so there is no metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionmetadata
func (c *Construction) Metadata(ctx echo.Context) error {

	var req MetadataRequest
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

	res := MetadataResponse{
		Metadata: map[string]interface{}{},
	}

	return ctx.JSON(http.StatusOK, res)
}
