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
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/lto-rosetta/models/lto"
)

func (l *Library) retrieve(key []byte, v interface{}) func(tx *badger.Txn) error {
	return func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("could not get value (key: %x): %w", key, lto.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("could not get value (key: %x): %w", key, err)
		}

		err = item.Value(func(val []byte) error {
			return l.codec.Unmarshal(val, v)
		})
		if err != nil {
			return fmt.Errorf("could not decode value (key: %x): %w", key, err)
		}

		return nil
	}
}

func (l *Library) save(key []byte, value interface{}) func(*badger.Txn) error {
	// NOTE: The value is encoded right away, so that later changes to it do not
	// affect what ends up in the transaction.
	val, err := l.codec.Marshal(value)
	return func(tx *badger.Txn) error {
		if err != nil {
			return fmt.Errorf("could not encode value (key: %x): %w", key, err)
		}

		err := tx.Set(key, val)
		if err != nil {
			return fmt.Errorf("could not set value (key: %x): %w", key, err)
		}

		return nil
	}
}

func (l *Library) remove(key []byte) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := tx.Delete(key)
		if err != nil {
			return fmt.Errorf("could not delete value (key: %x): %w", key, err)
		}

		return nil
	}
}
