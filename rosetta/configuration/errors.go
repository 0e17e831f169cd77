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
	"github.com/optakt/lto-rosetta/rosetta/meta"
)

var (
	ErrorUnknown                = meta.ErrorDefinition{Code: 1, Message: "unknown error", Retriable: true}
	ErrorUnknownBlockchain      = meta.ErrorDefinition{Code: 2, Message: "unknown blockchain identifier", Retriable: false}
	ErrorUnknownNetwork         = meta.ErrorDefinition{Code: 3, Message: "unknown network type", Retriable: false}
	ErrorBadOperation           = meta.ErrorDefinition{Code: 4, Message: "bad operation for construction", Retriable: false}
	ErrorUnsupportedSignature   = meta.ErrorDefinition{Code: 5, Message: "unsupported signature type", Retriable: false}
	ErrorBalanceAtOldBlock      = meta.ErrorDefinition{Code: 6, Message: "balance at old block", Retriable: false}
	ErrorUnsupportedTransaction = meta.ErrorDefinition{Code: 7, Message: "unsupported transaction type", Retriable: false}
	ErrorInvalidEncoding        = meta.ErrorDefinition{Code: 8, Message: "invalid request encoding", Retriable: false}
	ErrorInvalidFormat          = meta.ErrorDefinition{Code: 9, Message: "invalid request format", Retriable: false}
	ErrorUnsupportedCurve       = meta.ErrorDefinition{Code: 10, Message: "unsupported curve type", Retriable: false}
	ErrorInvalidKey             = meta.ErrorDefinition{Code: 11, Message: "invalid public key", Retriable: false}
	ErrorInvalidPayload         = meta.ErrorDefinition{Code: 12, Message: "invalid transaction payload", Retriable: false}
	ErrorInvalidSignature       = meta.ErrorDefinition{Code: 13, Message: "invalid transaction signature", Retriable: false}
	ErrorUnknownTransaction     = meta.ErrorDefinition{Code: 14, Message: "unknown transaction", Retriable: true}
)
