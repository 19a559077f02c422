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
	"fmt"
	"strconv"
	"time"

	"github.com/stockparfait/errors"
)

// Paging is the paging mode of an endpoint.
type Paging int

// Values of Paging.
const (
	PageNone   Paging = iota // the entire result arrives in one response
	PageCursor               // pages carry a cursor for the next page
	PageOffset               // pages are requested by a growing offset
)

// ParamKind is the declared type of an endpoint parameter.
type ParamKind int

// Values of ParamKind.
const (
	ParamString ParamKind = iota
	ParamInt
	ParamNumber
	ParamBool
	ParamDate // accepts time.Time or a preformatted string
)

// ParamSpec declares a single endpoint parameter.
type ParamSpec struct {
	Name     string
	Required bool
	Kind     ParamKind
	Default  string // encoded default for an optional parameter; "" = none
}

// Descriptor is the static declaration of one dataset endpoint: its URL path
// template, its parameter set, its paging mode and its output shape. A
// Descriptor is defined once per dataset and never mutated at runtime; all
// engine methods treat it as read-only.
type Descriptor struct {
	// Name of the dataset, used in error messages and the registry.
	Name string
	// Path template relative to the versioned base URL. Slots in curly
	// braces, such as "time-series/VENDOR_ID/{symbol}", are substituted
	// with the URL-escaped value of the parameter of the same name.
	Path string
	// Params declares the accepted parameters in order. Query parameters
	// are encoded in this order, so identical calls produce identical
	// URLs. Every path slot must be declared here.
	Params []ParamSpec
	// Paging mode of the endpoint.
	Paging Paging
	// KeyField is the field name under which the object key is stored
	// when the response is an object keyed by an identifier. Empty means
	// the endpoint never returns the keyed shape.
	KeyField string
	// Columns is the declared output shape, when known. It seeds the
	// column set of tabular output for empty results.
	Columns []string
}

// Param looks up a parameter spec by name.
func (d *Descriptor) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Params is the set of caller-supplied parameter values for a single call.
// Accepted value types depend on the declared ParamKind; see encodeParam.
type Params map[string]interface{}

// encodeParam converts a caller-supplied value to its URL string form
// according to the declared kind. A string value is accepted for any kind and
// passed through as-is.
func encodeParam(spec ParamSpec, v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	switch spec.Kind {
	case ParamInt:
		switch n := v.(type) {
		case int:
			return strconv.Itoa(n), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		}
	case ParamNumber:
		switch n := v.(type) {
		case int:
			return strconv.Itoa(n), nil
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		}
	case ParamBool:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
	case ParamDate:
		if t, ok := v.(time.Time); ok {
			return t.Format("20060102"), nil
		}
	}
	return "", errors.Reason("parameter '%s' has unsupported value %v of type %T",
		spec.Name, v, v)
}

// String prints a human-readable representation of the parameter kind.
func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamInt:
		return "int"
	case ParamNumber:
		return "number"
	case ParamBool:
		return "bool"
	case ParamDate:
		return "date"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}
