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

package validator

// Error descriptions for common errors.
const (
	blockchainEmpty  = "network identifier has empty blockchain field"
	networkEmpty     = "network identifier has empty network field"
	keyEmpty         = "public key has empty hex bytes field"
	curveEmpty       = "public key has empty curve type field"
	operationsEmpty  = "operation list is empty"
	blockIndexEmpty  = "block identifier has no index"
	txHashEmpty      = "transaction identifier has empty hash field"
	txBodyEmpty      = "transaction text is empty"
	signaturesEmpty  = "signature list is empty"
	signatureEmpty   = "signature has empty hex bytes field"
	requestInvalid   = "request is not a valid structure"
	requestMalformed = "request has invalid format"
)
