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

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/lto-rosetta/api/rosetta"
	"github.com/optakt/lto-rosetta/rosetta/failure"
	"github.com/optakt/lto-rosetta/rosetta/identifier"
	"github.com/optakt/lto-rosetta/rosetta/object"
)

const (
	blockchainField  = "blockchain"
	networkField     = "network"
	hexBytesField    = "hex_bytes"
	curveTypeField   = "curve_type"
	operationsField  = "operations"
	indexField       = "index"
	txField          = "transaction_id"
	transactionField = "transaction"
	signaturesField  = "signatures"
)

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// Each validator is registered for a single type, so the type assertions
	// on the current value are safe.
	v.RegisterStructValidation(networkValidator, identifier.Network{})
	v.RegisterStructValidation(publicKeyValidator, object.PublicKey{})

	// Top-level validators check the fields of entire requests.
	v.RegisterStructValidation(payloadsValidator, rosetta.PayloadsRequest{})
	v.RegisterStructValidation(parseValidator, rosetta.ParseRequest{})
	v.RegisterStructValidation(combineValidator, rosetta.CombineRequest{})
	v.RegisterStructValidation(hashValidator, rosetta.HashRequest{})
	v.RegisterStructValidation(submitValidator, rosetta.SubmitRequest{})
	v.RegisterStructValidation(transactionValidator, rosetta.TransactionRequest{})

	return v
}

// Request validates the given request and returns an InvalidFormat failure for
// the first problem it finds.
func (v *Validator) Request(request interface{}) error {

	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	// This happens when something other than a struct is passed in.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return failure.InvalidFormat{
			Description: failure.NewDescription(requestInvalid, failure.WithErr(err)),
		}
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return failure.InvalidFormat{
			Description: failure.NewDescription(requestMalformed, failure.WithErr(err)),
		}
	}

	// The tag of the reported error holds its description.
	first := errs[0]
	return failure.InvalidFormat{
		Description: failure.NewDescription(first.Tag(),
			failure.WithString("field", first.Field()),
		),
	}
}

func networkValidator(sl validator.StructLevel) {
	network := sl.Current().Interface().(identifier.Network)
	if network.Blockchain == "" {
		sl.ReportError(network.Blockchain, blockchainField, blockchainField, blockchainEmpty, "")
	}
	if network.Network == "" {
		sl.ReportError(network.Network, networkField, networkField, networkEmpty, "")
	}
}

func publicKeyValidator(sl validator.StructLevel) {
	key := sl.Current().Interface().(object.PublicKey)
	if key.HexBytes == "" {
		sl.ReportError(key.HexBytes, hexBytesField, hexBytesField, keyEmpty, "")
	}
	if key.CurveType == "" {
		sl.ReportError(key.CurveType, curveTypeField, curveTypeField, curveEmpty, "")
	}
}

func payloadsValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.PayloadsRequest)
	if len(req.Operations) == 0 {
		sl.ReportError(req.Operations, operationsField, operationsField, operationsEmpty, "")
	}
}

func parseValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.ParseRequest)
	if req.Transaction == "" {
		sl.ReportError(req.Transaction, transactionField, transactionField, txBodyEmpty, "")
	}
}

func combineValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.CombineRequest)
	if req.UnsignedTransaction == "" {
		sl.ReportError(req.UnsignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
	if len(req.Signatures) == 0 {
		sl.ReportError(req.Signatures, signaturesField, signaturesField, signaturesEmpty, "")
	}
	for _, sig := range req.Signatures {
		if sig.HexBytes == "" {
			sl.ReportError(sig.HexBytes, hexBytesField, hexBytesField, signatureEmpty, "")
		}
	}
}

func hashValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.HashRequest)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
}

func submitValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.SubmitRequest)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, transactionField, transactionField, txBodyEmpty, "")
	}
}

func transactionValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(rosetta.TransactionRequest)
	if req.BlockID.Index == nil {
		sl.ReportError(req.BlockID.Index, indexField, indexField, blockIndexEmpty, "")
	}
	if req.TransactionID.Hash == "" {
		sl.ReportError(req.TransactionID.Hash, txField, txField, txHashEmpty, "")
	}
}
