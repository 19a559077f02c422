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
	"strings"
)

// MissingParameterError indicates that one or more required parameters of an
// endpoint were not supplied. It is returned before any network call.
type MissingParameterError struct {
	Endpoint string
	Params   []string // missing parameter names, in declaration order
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter(s): %s",
		e.Endpoint, strings.Join(e.Params, ", "))
}

// UnknownParameterError indicates that the caller supplied parameters not
// declared by the endpoint's descriptor. It is returned before any network
// call.
type UnknownParameterError struct {
	Endpoint string
	Params   []string // unknown parameter names, sorted
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter(s): %s",
		e.Endpoint, strings.Join(e.Params, ", "))
}

// MissingCredentialError indicates that no Client with an API token is
// configured in the calling context. It is returned before any network call.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return "no API token configured in the context; see iex.UseClient"
}

// TransportError indicates a network-level failure: timeout, DNS error,
// connection refused and the like. The remote service was never reached, or
// never answered.
type TransportError struct {
	URL     string // the request URL path, without the query
	Timeout bool
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out: %s", e.URL, e.Cause.Error())
	}
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Cause.Error())
}

func (e *TransportError) Unwrap() error { return e.Cause }

// ProviderError indicates that the remote service rejected the request with a
// non-2xx status. A 4xx status means a bad request, an invalid token or a
// dataset the account is not entitled to; a 5xx status is an upstream
// failure. The caller decides whether to retry; this package never does.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Body)
}

// NormalizationError indicates that a response does not match any of the
// supported JSON shapes and cannot be converted to records.
type NormalizationError struct {
	Endpoint   string
	Diagnostic string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s: cannot normalize response: %s", e.Endpoint, e.Diagnostic)
}
