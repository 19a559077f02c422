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
	"fmt"
	"io"
)

// page is the result of normalizing one response: the records in provider
// order, plus the cursor of the next page for cursor-paged endpoints.
type page struct {
	Records []Record
	Cursor  string
}

// decodeValue reads one JSON value off the decoder. Objects become Records
// with fields in source order, arrays become []Value, numbers stay as
// json.Number. encoding/json cannot do this through a map, which loses key
// order.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, json.Number, bool or nil
	}
	switch delim {
	case '{':
		var r Record
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			r.Set(key, v)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return r, nil
	case '[':
		vs := []Value{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return vs, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// normalize maps a raw response onto the canonical record sequence. The three
// supported shapes are:
//
//   - a single JSON object: one record;
//   - a JSON array of objects: one record per element, in order;
//   - a JSON object keyed by an identifier (only when the descriptor declares
//     KeyField): one record per key in source order, each augmented with the
//     key stored under KeyField.
//
// Paged responses arrive wrapped in a {"data": [...], "meta": {...}} envelope
// which is unwrapped before the shape dispatch. Values pass through untyped;
// no field is dropped. Any other shape is a *NormalizationError; the shape is
// never guessed.
func normalize(raw *rawResponse, d *Descriptor) (*page, error) {
	dec := json.NewDecoder(bytes.NewReader(raw.Body))
	dec.UseNumber()
	top, err := decodeValue(dec)
	if err != nil {
		return nil, &NormalizationError{
			Endpoint:   d.Name,
			Diagnostic: "invalid JSON: " + err.Error(),
		}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &NormalizationError{
			Endpoint:   d.Name,
			Diagnostic: "trailing data after the JSON value",
		}
	}

	switch v := top.(type) {
	case []Value:
		records, err := objectSequence(v, d)
		if err != nil {
			return nil, err
		}
		return &page{Records: records}, nil
	case Record:
		if data, ok := envelopeData(v); ok {
			records, err := objectSequence(data, d)
			if err != nil {
				return nil, err
			}
			return &page{Records: records, Cursor: envelopeCursor(v)}, nil
		}
		if d.KeyField != "" && keyedObject(v) {
			records := make([]Record, 0, v.Len())
			for _, f := range v.Fields() {
				r := NewRecord(Field{Name: d.KeyField, Value: f.Name})
				for _, inner := range f.Value.(Record).Fields() {
					r.Set(inner.Name, inner.Value)
				}
				records = append(records, r)
			}
			return &page{Records: records}, nil
		}
		return &page{Records: []Record{v}}, nil
	}
	return nil, &NormalizationError{
		Endpoint:   d.Name,
		Diagnostic: fmt.Sprintf("top-level value %v is not an object or an array", top),
	}
}

// objectSequence converts an array of JSON objects to records, preserving the
// order.
func objectSequence(vs []Value, d *Descriptor) ([]Record, error) {
	records := make([]Record, len(vs))
	for i, v := range vs {
		r, ok := v.(Record)
		if !ok {
			return nil, &NormalizationError{
				Endpoint:   d.Name,
				Diagnostic: fmt.Sprintf("array element %d is not an object: %v", i, v),
			}
		}
		records[i] = r
	}
	return records, nil
}

// envelopeData recognizes the paged envelope: an object whose fields are
// "data" (an array) and optionally "meta".
func envelopeData(r Record) ([]Value, bool) {
	data, ok := r.Get("data")
	if !ok {
		return nil, false
	}
	vs, ok := data.([]Value)
	if !ok {
		return nil, false
	}
	for _, f := range r.Fields() {
		if f.Name != "data" && f.Name != "meta" {
			return nil, false
		}
	}
	return vs, true
}

func envelopeCursor(r Record) string {
	meta, ok := r.Get("meta")
	if !ok {
		return ""
	}
	m, ok := meta.(Record)
	if !ok {
		return ""
	}
	cursor, ok := m.Get("next_cursor")
	if !ok {
		return ""
	}
	s, _ := cursor.(string)
	return s
}

// keyedObject checks that every field value is itself an object.
func keyedObject(r Record) bool {
	if r.Len() == 0 {
		return false
	}
	for _, f := range r.Fields() {
		if _, ok := f.Value.(Record); !ok {
			return false
		}
	}
	return true
}
