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

package configuration

import (
	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
)

// Network is a validated handle on the served network.
type Network struct {
	params    lto.Params
	api       string
	reference string
}

// API returns the base URL of the node API.
func (n Network) API() string {
	return n.api
}

// Reference returns the base URL of the reference node API, which may be empty.
func (n Network) Reference() string {
	return n.reference
}

// ChainID returns the chain ID byte used in addresses of the network.
func (n Network) ChainID() byte {
	return n.params.ChainID
}

// Identifier returns the network identifier of the network.
func (n Network) Identifier() identifier.Network {
	id := identifier.Network{
		Blockchain: lto.Blockchain,
		Network:    n.params.Network,
	}
	return id
}
