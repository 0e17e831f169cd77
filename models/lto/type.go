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

import (
	"strconv"
)

// Type is the numeric code the chain uses to tag transaction kinds.
type Type uint8

const (
	TypeReward            Type = 0
	TypeGenesis           Type = 1
	TypeTransfer          Type = 4
	TypeLease             Type = 8
	TypeCancelLease       Type = 9
	TypeMassTransfer      Type = 11
	TypeData              Type = 12
	TypeSetScript         Type = 13
	TypeAnchor            Type = 15
	TypeAssociation       Type = 16
	TypeRevokeAssociation Type = 17
	TypeSponsor           Type = 18
	TypeCancelSponsor     Type = 19
)

var operationNames = map[Type]string{
	TypeReward:            "REWARD",
	TypeGenesis:           "GENESIS",
	TypeTransfer:          "TRANSFER",
	TypeLease:             "LEASE",
	TypeCancelLease:       "CANCEL_LEASE",
	TypeMassTransfer:      "MASS_TRANSFER",
	TypeData:              "DATA",
	TypeSetScript:         "SET_SCRIPT",
	TypeAnchor:            "ANCHOR",
	TypeAssociation:       "ASSOCIATION",
	TypeRevokeAssociation: "REVOKE_ASSOCIATION",
	TypeSponsor:           "SPONSOR",
	TypeCancelSponsor:     "CANCEL_SPONSOR",
}

// String returns the operation type name for the transaction type, or the
// numeric code for unknown types.
func (t Type) String() string {
	name, ok := operationNames[t]
	if !ok {
		return strconv.FormatUint(uint64(t), 10)
	}
	return name
}

// Known returns whether the type code belongs to a supported transaction kind.
func (t Type) Known() bool {
	_, ok := operationNames[t]
	return ok
}

// OperationTypes returns the names of all operation types, ordered by type code.
func OperationTypes() []string {
	types := []Type{
		TypeReward,
		TypeGenesis,
		TypeTransfer,
		TypeLease,
		TypeCancelLease,
		TypeMassTransfer,
		TypeData,
		TypeSetScript,
		TypeAnchor,
		TypeAssociation,
		TypeRevokeAssociation,
		TypeSponsor,
		TypeCancelSponsor,
	}
	names := make([]string, 0, len(types))
	for _, typ := range types {
		names = append(names, typ.String())
	}
	return names
}
