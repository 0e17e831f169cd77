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
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/optakt/lto-rosetta/rosetta/configuration"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/meta"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

func rosettaError(definition meta.ErrorDefinition, description failure.Description, fields ...failure.FieldFunc) Error {
	description.Fields = append(failure.Fields(nil), description.Fields...)
	for _, field := range fields {
		field(&description.Fields)
	}
	e := Error{
		ErrorDefinition: definition,
		Description:     description.Text,
		Details:         description.Details(),
	}
	return e
}

const invalidJSON = "request does not contain valid JSON-encoded body"

func invalidEncoding(err error) *echo.HTTPError {
	e := rosettaError(
		configuration.ErrorInvalidEncoding,
		failure.NewDescription(invalidJSON, failure.WithErr(err)),
	)
	return echo.NewHTTPError(statusBadRequest, e)
}

// apiError converts an error into the Rosetta error it represents, along with
// the matching HTTP status code. Errors that are not failures are unexpected
// and are reported as retriable unknown errors.
func apiError(err error) *echo.HTTPError {

	var ifErr failure.InvalidFormat
	if errors.As(err, &ifErr) {
		return echo.NewHTTPError(statusBadRequest, rosettaError(configuration.ErrorInvalidFormat, ifErr.Description))
	}
	var ipErr failure.InvalidPayload
	if errors.As(err, &ipErr) {
		return echo.NewHTTPError(statusBadRequest, rosettaError(configuration.ErrorInvalidPayload, ipErr.Description,
			failure.WithString("encoding", ipErr.Encoding),
		))
	}
	var ubErr failure.UnknownBlockchain
	if errors.As(err, &ubErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnknownBlockchain, ubErr.Description,
			failure.WithString("blockchain", ubErr.Blockchain),
		))
	}
	var unErr failure.UnknownNetwork
	if errors.As(err, &unErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnknownNetwork, unErr.Description,
			failure.WithString("network", unErr.Network),
		))
	}
	var boErr failure.BadOperation
	if errors.As(err, &boErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorBadOperation, boErr.Description,
			failure.WithInt64("operations", int64(boErr.Operations)),
		))
	}
	var usErr failure.UnsupportedSignature
	if errors.As(err, &usErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnsupportedSignature, usErr.Description,
			failure.WithInt64("index", int64(usErr.Index)),
			failure.WithString("signature_type", usErr.Type),
		))
	}
	var baErr failure.BalanceAtOldBlock
	if errors.As(err, &baErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorBalanceAtOldBlock, baErr.Description,
			failure.WithUint64("height", baErr.Height),
		))
	}
	var utErr failure.UnsupportedTransaction
	if errors.As(err, &utErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnsupportedTransaction, utErr.Description,
			failure.WithInt64("type", int64(utErr.Code)),
		))
	}
	var ucErr failure.UnsupportedCurve
	if errors.As(err, &ucErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnsupportedCurve, ucErr.Description,
			failure.WithString("curve_type", ucErr.Curve),
		))
	}
	var ikErr failure.InvalidKey
	if errors.As(err, &ikErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidKey, ikErr.Description,
			failure.WithString("key", ikErr.Key),
		))
	}
	var isErr failure.InvalidSignature
	if errors.As(err, &isErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidSignature, isErr.Description,
			failure.WithInt64("index", int64(isErr.Index)),
		))
	}
	var utxErr failure.UnknownTransaction
	if errors.As(err, &utxErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnknownTransaction, utxErr.Description,
			failure.WithUint64("height", utxErr.Height),
			failure.WithString("hash", utxErr.Hash),
		))
	}

	return echo.NewHTTPError(statusInternalServerError, rosettaError(configuration.ErrorUnknown,
		failure.NewDescription("unexpected error while processing request", failure.WithErr(err)),
	))
}
