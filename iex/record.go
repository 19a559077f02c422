// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iex

import (
	"bytes"
	"encoding/json"

	"github.com/stockparfait/errors"
)

// Value is an arbitrary field value of a Record. Scalars are string,
// json.Number, bool or nil; nested objects are Record, nested arrays are
// []Value.
type Value interface{}

// Field is a single named value of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is one normalized entity from a provider response: an ordered
// mapping from field name to value. Field order is the order in which the
// fields appeared in the provider's JSON.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord creates a record from the given fields, in order. A repeated
// field name overwrites the earlier value in place.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Set the field value. A new field is appended; an existing field is
// overwritten, keeping its position.
func (r *Record) Set(name string, v Value) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get the field value. The second value indicates whether the field exists.
func (r Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Has checks for the field's existence.
func (r Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Fields of the record in order. The caller must not modify the result.
func (r Record) Fields() []Field { return r.fields }

// Names of the fields in order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Len is the number of fields.
func (r Record) Len() int { return len(r.fields) }

var _ json.Marshaler = Record{}

// MarshalJSON implements json.Marshaler preserving the field order, which
// encoding/json would lose for a plain map.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, errors.Annotate(err, "failed to marshal field name '%s'", f.Name)
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, errors.Annotate(err, "failed to marshal field '%s'", f.Name)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
