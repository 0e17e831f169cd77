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

// Store is a keyed record store on top of a Badger database.
type Store struct {
	lib *Library
	db  *badger.DB
}

// NewStore creates a record store on the given database.
func NewStore(lib *Library, db *badger.DB) *Store {
	s := Store{
		lib: lib,
		db:  db,
	}
	return &s
}

// Retrieve decodes the record with the given name into the value. It fails with
// an error wrapping `lto.ErrNotFound` if there is no such record.
func (s *Store) Retrieve(name string, value interface{}) error {
	return s.db.View(s.lib.RetrieveRecord(name, value))
}

// Save writes the record with the given name.
func (s *Store) Save(name string, value interface{}) error {
	return s.db.Update(s.lib.SaveRecord(name, value))
}

// Remove deletes the record with the given name. Removing a missing record is
// not an error.
func (s *Store) Remove(name string) error {
	return s.db.Update(s.lib.RemoveRecord(name))
}
