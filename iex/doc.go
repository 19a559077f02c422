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

// Package iex implements the generic endpoint engine of the IEX Cloud REST
// API.
//
// Every dataset on IEX Cloud is described by a Descriptor: a static record of
// the endpoint's path template, its required and optional parameters, its
// paging mode, and optionally its declared output columns. The engine turns a
// Descriptor and a set of caller parameters into a fully resolved request,
// executes it with the Client injected into the context, and normalizes the
// provider's JSON into an ordered sequence of Records, regardless of whether
// the provider returned a single object, an array of objects, or an object
// keyed by an identifier.
//
// A Client is injected into the context with UseClient and carries the API
// token, the base URL (overridable for the sandbox environment and in tests)
// and the HTTP configuration. Paged endpoints are downloaded transparently,
// one page per round trip, in the order returned by the provider.
//
// All failures are surfaced as typed errors: parameter and credential
// problems are detected before any network call, transport and provider
// failures carry the status code and response body, and unexpected response
// shapes are reported per descriptor. Nothing is retried internally.
//
// APIs for specific dataset catalogs, such as the premium datasets, are
// implemented in the subpackages.
package iex
