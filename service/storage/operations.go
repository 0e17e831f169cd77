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

package storage

import (
	"github.com/dgraph-io/badger/v2"
)

// SaveRecord is an operation that writes the record with the given name.
func (l *Library) SaveRecord(name string, value interface{}) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixRecord, name), value)
}

// RetrieveRecord is an operation that reads the record with the given name.
func (l *Library) RetrieveRecord(name string, value interface{}) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixRecord, name), value)
}

// RemoveRecord is an operation that deletes the record with the given name.
func (l *Library) RemoveRecord(name string) func(*badger.Txn) error {
	return l.remove(EncodeKey(PrefixRecord, name))
}
