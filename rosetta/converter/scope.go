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

package converter

// Scope is the context a transaction is converted in. It is either Confirmed,
// for transactions included in a block, or Unconfirmed, for transactions that
// are being constructed or are waiting to be included.
type Scope interface {
	scope()
}

// Confirmed is the scope of a transaction included in the block at the given
// height. Fees are paid by the sponsor of the sender at that height, if any.
type Confirmed struct {
	Height uint64
}

func (Confirmed) scope() {}

// Unconfirmed is the scope of a transaction that is not part of a block yet.
// Sponsorships are ignored and the sender always pays the fee.
type Unconfirmed struct{}

func (Unconfirmed) scope() {}
