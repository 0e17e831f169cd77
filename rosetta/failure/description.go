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

package failure

import (
	"fmt"
	"strconv"
	"strings"
)

// Description is a human-readable explanation of a failure, along with the
// values that caused it. The fields end up in the details of the error
// returned by the API.
type Description struct {
	Text   string
	Fields Fields
}

func NewDescription(text string, fields ...FieldFunc) Description {
	d := Description{
		Text:   text,
		Fields: make(Fields, 0, len(fields)),
	}
	for _, field := range fields {
		field(&d.Fields)
	}
	return d
}

func (d Description) String() string {
	if len(d.Fields) == 0 {
		return d.Text
	}
	return fmt.Sprintf("%s (%s)", d.Text, d.Fields)
}

// Details returns the fields of the description as a map. It returns nil
// when there are no fields.
func (d Description) Details() map[string]interface{} {
	if len(d.Fields) == 0 {
		return nil
	}
	details := make(map[string]interface{}, len(d.Fields))
	for _, field := range d.Fields {
		details[field.Key] = field.Val
	}
	return details
}

type Field struct {
	Key string
	Val interface{}
}

type Fields []Field

func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, field := range f {
		parts = append(parts, fmt.Sprintf("%s: %v", field.Key, field.Val))
	}
	return strings.Join(parts, ", ")
}

type FieldFunc func(*Fields)

func with(key string, val interface{}) FieldFunc {
	return func(f *Fields) {
		*f = append(*f, Field{Key: key, Val: val})
	}
}

func WithErr(err error) FieldFunc {
	return with("error", err.Error())
}

func WithInt64(key string, val int64) FieldFunc {
	return with(key, strconv.FormatInt(val, 10))
}

func WithUint64(key string, val uint64) FieldFunc {
	return with(key, strconv.FormatUint(val, 10))
}

func WithString(key string, val string) FieldFunc {
	return with(key, val)
}

func WithStrings(key string, vals ...string) FieldFunc {
	return with(key, vals)
}
