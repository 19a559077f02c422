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
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/stockparfait/errors"
)

// queryParam is a single query key-value pair. Pairs are kept as an ordered
// slice rather than url.Values: query parameters are encoded in the
// descriptor's declaration order, so identical calls produce identical URLs.
type queryParam struct {
	Key   string
	Value string
}

// requestSpec is a fully resolved request, created per call by buildRequest
// and owned by that call until handed to the transport. The URL never
// contains unresolved path slots.
type requestSpec struct {
	Method string
	Path   string // resolved URL path, without the query; safe for logs
	Query  []queryParam
	base   string // base URL including the version segment
}

// URL assembles the complete request URL, including the query string.
func (s *requestSpec) URL() string {
	var b strings.Builder
	b.WriteString(s.base)
	b.WriteByte('/')
	b.WriteString(s.Path)
	for i, q := range s.Query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	return b.String()
}

// withQuery creates a copy of the spec with the given query parameter
// appended, or replaced in place when the key is already present. Used by the
// paging engine for cursor and offset parameters.
func (s *requestSpec) withQuery(key, value string) *requestSpec {
	s2 := *s
	s2.Query = make([]queryParam, len(s.Query))
	copy(s2.Query, s.Query)
	for i, q := range s2.Query {
		if q.Key == key {
			s2.Query[i].Value = value
			return &s2
		}
	}
	s2.Query = append(s2.Query, queryParam{key, value})
	return &s2
}

var pathSlot = regexp.MustCompile(`\{([^{}]+)\}`)

// buildRequest resolves a descriptor and caller parameters into a request
// spec. It is a pure transformation with no side effects; every validation
// failure happens here, before any network traffic:
//
//   - parameters not declared in the descriptor: *UnknownParameterError;
//   - absent required parameters, or absent parameters referenced by a path
//     slot: *MissingParameterError;
//   - nil client or empty token: *MissingCredentialError.
//
// Path slots are substituted with URL-escaped values; the remaining
// parameters become query parameters in declaration order, with the token
// appended last.
func buildRequest(c *Client, d *Descriptor, params Params) (*requestSpec, error) {
	var unknown []string
	for name := range params {
		if _, ok := d.Param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownParameterError{Endpoint: d.Name, Params: unknown}
	}

	var missing []string
	encoded := make(map[string]string)
	for _, spec := range d.Params {
		v, ok := params[spec.Name]
		if !ok {
			if spec.Required {
				missing = append(missing, spec.Name)
			} else if spec.Default != "" {
				encoded[spec.Name] = spec.Default
			}
			continue
		}
		s, err := encodeParam(spec, v)
		if err != nil {
			return nil, errors.Annotate(err, "%s: failed to encode parameter", d.Name)
		}
		encoded[spec.Name] = s
	}
	if len(missing) > 0 {
		return nil, &MissingParameterError{Endpoint: d.Name, Params: missing}
	}

	inPath := make(map[string]bool)
	path := pathSlot.ReplaceAllStringFunc(d.Path, func(slot string) string {
		name := slot[1 : len(slot)-1]
		v, ok := encoded[name]
		if !ok {
			missing = append(missing, name)
			return slot
		}
		inPath[name] = true
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return nil, &MissingParameterError{Endpoint: d.Name, Params: missing}
	}

	if c == nil || c.token == "" {
		return nil, &MissingCredentialError{}
	}

	spec := &requestSpec{
		Method: http.MethodGet,
		Path:   path,
		base:   strings.TrimSuffix(c.baseURL, "/") + "/" + c.version,
	}
	for _, p := range d.Params {
		if v, ok := encoded[p.Name]; ok && !inPath[p.Name] {
			spec.Query = append(spec.Query, queryParam{p.Name, v})
		}
	}
	spec.Query = append(spec.Query, queryParam{"token", c.token})
	return spec, nil
}
