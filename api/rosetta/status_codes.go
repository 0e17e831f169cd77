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
)

// Rosetta expects every error to come with HTTP status code 500. The smart
// codes mode returns 400 for malformed requests and 422 for requests that are
// well-formed but can not be processed.
var (
	statusOK                  = http.StatusOK
	statusBadRequest          = http.StatusInternalServerError
	statusUnprocessableEntity = http.StatusInternalServerError
	statusInternalServerError = http.StatusInternalServerError
)

// EnableSmartCodes switches the API to meaningful HTTP status codes for errors.
// It must be called before the API starts serving requests.
func EnableSmartCodes() {
	statusOK = http.StatusOK
	statusBadRequest = http.StatusBadRequest
	statusUnprocessableEntity = http.StatusUnprocessableEntity
	statusInternalServerError = http.StatusInternalServerError
}
