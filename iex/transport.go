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
	"context"
	"io"
	"net"
	"net/http"
)

// rawResponse is the outcome of a single round trip: the status, the raw body
// bytes and the content type. It is owned by the call that created it and not
// retained by the transport.
type rawResponse struct {
	Status      int
	Body        []byte
	ContentType string
}

// do executes a single synchronous HTTP round trip, bounded by the client's
// timeout. There is no retry of any kind: a billed API must not receive
// duplicate calls behind the caller's back.
//
// A non-2xx status yields *ProviderError carrying the status and body, so the
// caller can distinguish a rejected request (4xx) from an upstream failure
// (5xx). Network-level failures yield *TransportError, with Timeout set when
// the round trip exceeded the bound.
func (c *Client) do(ctx context.Context, spec *requestSpec) (*rawResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL(), nil)
	if err != nil {
		return nil, &TransportError{URL: spec.Path, Cause: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: spec.Path, Timeout: isTimeout(ctx, err), Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: spec.Path, Timeout: isTimeout(ctx, err), Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Status: resp.StatusCode, Body: string(body)}
	}
	return &rawResponse{
		Status:      resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return true
	}
	return false
}
