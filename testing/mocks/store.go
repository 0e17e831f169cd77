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

package mocks

import (
	"testing"
)

type Store struct {
	RetrieveFunc func(name string, value interface{}) error
	SaveFunc     func(name string, value interface{}) error
	RemoveFunc   func(name string) error
}

func BaselineStore(t *testing.T) *Store {
	t.Helper()

	s := Store{
		RetrieveFunc: func(name string, value interface{}) error {
			return nil
		},
		SaveFunc: func(name string, value interface{}) error {
			return nil
		},
		RemoveFunc: func(name string) error {
			return nil
		},
	}

	return &s
}

func (s *Store) Retrieve(name string, value interface{}) error {
	return s.RetrieveFunc(name, value)
}

func (s *Store) Save(name string, value interface{}) error {
	return s.SaveFunc(name, value)
}

func (s *Store) Remove(name string) error {
	return s.RemoveFunc(name)
}
