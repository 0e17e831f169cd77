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
	"strings"

	"github.com/optakt/lto-rosetta/models/lto"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/meta"
)

// StatusSuccess is the status of every operation we derive, as we only look at
// transactions that made it into a block or are about to.
var StatusSuccess = meta.StatusDefinition{Status: "SUCCESS", Successful: true}

// Configuration holds the static description of the network served by this
// process, and validates the network identifiers of incoming requests.
type Configuration struct {
	network    Network
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates the configuration for the given network, using the given node
// API base URLs for it.
func New(params lto.Params, api string, reference string) *Configuration {

	network := Network{
		params:    params,
		api:       strings.TrimRight(api, "/"),
		reference: strings.TrimRight(reference, "/"),
	}

	statuses := []meta.StatusDefinition{
		StatusSuccess,
	}

	errors := []meta.ErrorDefinition{
		ErrorUnknown,
		ErrorUnknownBlockchain,
		ErrorUnknownNetwork,
		ErrorBadOperation,
		ErrorUnsupportedSignature,
		ErrorBalanceAtOldBlock,
		ErrorUnsupportedTransaction,
		ErrorInvalidEncoding,
		ErrorInvalidFormat,
		ErrorUnsupportedCurve,
		ErrorInvalidKey,
		ErrorInvalidPayload,
		ErrorInvalidSignature,
		ErrorUnknownTransaction,
	}

	c := Configuration{
		network:    network,
		statuses:   statuses,
		operations: lto.OperationTypes(),
		errors:     errors,
	}

	return &c
}

func (c *Configuration) Network() Network {
	return c.network
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

func (c *Configuration) Operations() []string {
	return c.operations
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Check validates the given network identifier against the served network. The
// blockchain name is matched without regard to case, while the network has to
// be one of the supported networks and the one this process is configured for.
func (c *Configuration) Check(network identifier.Network) (Network, error) {

	if !strings.EqualFold(network.Blockchain, lto.Blockchain) {
		return Network{}, failure.UnknownBlockchain{
			Blockchain: network.Blockchain,
			Description: failure.NewDescription(blockchainUnknown,
				failure.WithString("blockchain_want", lto.Blockchain),
			),
		}
	}

	_, ok := lto.Lookup(network.Network)
	if !ok {
		return Network{}, failure.UnknownNetwork{
			Network: network.Network,
			Description: failure.NewDescription(networkUnsupported,
				failure.WithStrings("supported", lto.Networks()...),
			),
		}
	}

	if network.Network != c.network.params.Network {
		return Network{}, failure.UnknownNetwork{
			Network: network.Network,
			Description: failure.NewDescription(networkMismatch,
				failure.WithString("network_want", c.network.params.Network),
			),
		}
	}

	return c.network, nil
}

const (
	blockchainUnknown  = "invalid blockchain identifier"
	networkUnsupported = "invalid network type"
	networkMismatch    = "network is not served by this instance"
)
