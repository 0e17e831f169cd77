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

package lto

const (
	Blockchain = "LTO Network"
	Mainnet    = "mainnet"
	Testnet    = "testnet"
	Symbol     = "LTO"
	Decimals   = 8

	// BurnPerTransaction is the amount of atomic units burned from the fee pool
	// for every transaction of a block, once the burn activation height is reached.
	BurnPerTransaction = 10000000

	// DefaultTransferFee is the fee used for transfers built by the construction API.
	DefaultTransferFee = 100000000

	CurveEdwards25519 = "edwards25519"
	SignatureEd25519  = "ed25519"

	// AddressVersion is the first byte of every encoded address.
	AddressVersion = 0x01
)

var ChainParams = make(map[string]Params)

// Params are the parameters of one LTO network.
type Params struct {
	Network string
	ChainID byte
}

func init() {
	ChainParams[Mainnet] = Params{
		Network: Mainnet,
		ChainID: 'L',
	}
	ChainParams[Testnet] = Params{
		Network: Testnet,
		ChainID: 'T',
	}
}

// Lookup returns the parameters of the given network name.
func Lookup(network string) (Params, bool) {
	params, ok := ChainParams[network]
	return params, ok
}

// Networks returns the names of all supported networks.
func Networks() []string {
	return []string{Mainnet, Testnet}
}
