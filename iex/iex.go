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
	"net/http"
	"time"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the production API server. It may be
// overwritten in tests before creating a new client.
var URL = "https://cloud.iexapis.com"

// SandboxURL is the base URL of the sandbox environment, which serves
// obfuscated data against a test token without touching message quota.
var SandboxURL = "https://sandbox.iexapis.com"

// DefaultVersion is the API version path segment used unless overridden.
const DefaultVersion = "stable"

// DefaultTimeout bounds a single round trip unless overridden.
const DefaultTimeout = 30 * time.Second

// Client for querying the IEX Cloud API.
type Client struct {
	baseURL    string // the base URL of the server
	version    string // the API version path segment
	token      string // your very own secret key
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client in UseClient.
type Option func(*Client)

// BaseURL overrides the base URL, e.g. for a staging server.
func BaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// Sandbox points the client at the sandbox environment.
func Sandbox() Option {
	return func(c *Client) { c.baseURL = SandboxURL }
}

// Version overrides the API version path segment.
func Version(v string) Option {
	return func(c *Client) { c.version = v }
}

// Timeout bounds a single round trip.
func Timeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// HTTPClient sets a custom HTTP client, e.g. with a proxy, or a test server's
// client.
func HTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// newClient creates a new client.
func newClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    URL,
		version:    DefaultVersion,
		token:      token,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API token and injects it into
// the context.
func UseClient(ctx context.Context, token string, opts ...Option) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(token, opts...))
}
