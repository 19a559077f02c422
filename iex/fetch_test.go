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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	t.Parallel()

	d := &Descriptor{
		Name: "testData",
		Path: "time-series/TEST_DATA/{symbol}",
		Params: []ParamSpec{
			{Name: "symbol", Required: true},
			{Name: "last", Kind: ParamInt},
		},
	}

	Convey("Fetch against a test server", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := UseClient(context.Background(), "testkey",
			BaseURL(server.URL()), HTTPClient(server.Client()))

		Convey("a single unpaged response", func() {
			server.ResponseBody = []string{`[{"date": "2023-01-01", "value": 10}]`}

			records, err := d.Fetch(ctx, Params{"symbol": "AAPL", "last": 5})
			So(err, ShouldBeNil)
			So(records, ShouldResemble, []Record{NewRecord(
				Field{"date", "2023-01-01"},
				Field{"value", json.Number("10")},
			)})
			So(server.RequestPath, ShouldEqual, "/stable/time-series/TEST_DATA/AAPL")
			So(server.RequestQuery.Get("last"), ShouldEqual, "5")
			So(server.RequestQuery.Get("token"), ShouldEqual, "testkey")
		})

		Convey("cursor paging follows next_cursor until it is absent", func() {
			cursorD := &Descriptor{Name: "cursorData", Path: "data", Paging: PageCursor}
			server.ResponseBody = []string{
				`{"data": [{"v": 1}, {"v": 2}], "meta": {"next_cursor": "abc"}}`,
				`{"data": [{"v": 3}], "meta": {}}`,
			}

			records, err := cursorD.Fetch(ctx, nil)
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 3)
			v, _ := records[2].Get("v")
			So(v, ShouldEqual, json.Number("3"))
			// The last recorded request is for the second page.
			So(server.RequestQuery.Get("cursor"), ShouldEqual, "abc")
		})

		Convey("offset paging stops at the first empty page", func() {
			offsetD := &Descriptor{Name: "offsetData", Path: "data", Paging: PageOffset}
			server.ResponseBody = []string{
				`[{"v": 1}, {"v": 2}]`,
				`[{"v": 3}]`,
				`[]`,
			}

			records, err := offsetD.Fetch(ctx, nil)
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 3)
			So(server.RequestQuery.Get("offset"), ShouldEqual, "3")
		})

		Convey("a failure on a later page names the page and discards records", func() {
			cursorD := &Descriptor{Name: "cursorData", Path: "data", Paging: PageCursor}
			server.ResponseBody = []string{
				`{"data": [{"v": 1}], "meta": {"next_cursor": "abc"}}`,
				`really not JSON`,
			}

			records, err := cursorD.Fetch(ctx, nil)
			So(records, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "page 2")
		})
	})

	Convey("Fetch error taxonomy", t, func() {
		Convey("parameter errors are checked before any network call", func() {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(&calls, 1)
				}))
			defer server.Close()
			ctx := UseClient(context.Background(), "testkey", BaseURL(server.URL))

			records, err := d.Fetch(ctx, Params{"last": 5})
			So(records, ShouldBeNil)
			So(err, ShouldResemble, &MissingParameterError{
				Endpoint: "testData", Params: []string{"symbol"}})
			So(atomic.LoadInt32(&calls), ShouldEqual, 0)
		})

		Convey("no client in the context is a credential error", func() {
			_, err := d.Fetch(context.Background(), Params{"symbol": "AAPL"})
			So(err, ShouldResemble, &MissingCredentialError{})
		})

		Convey("a provider rejection carries the status and body", func() {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusForbidden)
					fmt.Fprint(w, "The API key provided is not valid.")
				}))
			defer server.Close()
			ctx := UseClient(context.Background(), "badkey", BaseURL(server.URL))

			_, err := d.Fetch(ctx, Params{"symbol": "AAPL"})
			So(err, ShouldResemble, &ProviderError{
				Status: 403, Body: "The API key provided is not valid."})
		})

		Convey("an upstream failure is distinguishable by its status", func() {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
			defer server.Close()
			ctx := UseClient(context.Background(), "testkey", BaseURL(server.URL))

			_, err := d.Fetch(ctx, Params{"symbol": "AAPL"})
			provErr, ok := err.(*ProviderError)
			So(ok, ShouldBeTrue)
			So(provErr.Status, ShouldEqual, 500)
		})

		Convey("exceeding the deadline is a timeout transport error", func() {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(200 * time.Millisecond)
				}))
			defer server.Close()
			ctx := UseClient(context.Background(), "testkey",
				BaseURL(server.URL), Timeout(20*time.Millisecond))

			_, err := d.Fetch(ctx, Params{"symbol": "AAPL"})
			transErr, ok := err.(*TransportError)
			So(ok, ShouldBeTrue)
			So(transErr.Timeout, ShouldBeTrue)
		})

		Convey("an unreachable server is a non-timeout transport error", func() {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {}))
			url := server.URL
			server.Close()
			ctx := UseClient(context.Background(), "testkey", BaseURL(url))

			_, err := d.Fetch(ctx, Params{"symbol": "AAPL"})
			transErr, ok := err.(*TransportError)
			So(ok, ShouldBeTrue)
			So(transErr.Timeout, ShouldBeFalse)
		})

		Convey("no retry: a failing call hits the server exactly once", func() {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(&calls, 1)
					w.WriteHeader(http.StatusInternalServerError)
				}))
			defer server.Close()
			ctx := UseClient(context.Background(), "testkey", BaseURL(server.URL))

			_, err := d.Fetch(ctx, Params{"symbol": "AAPL"})
			So(err, ShouldNotBeNil)
			So(atomic.LoadInt32(&calls), ShouldEqual, 1)
		})
	})
}

func TestClient(t *testing.T) {
	t.Parallel()

	Convey("Client configuration", t, func() {
		Convey("defaults", func() {
			c := newClient("k")
			So(c.baseURL, ShouldEqual, URL)
			So(c.version, ShouldEqual, DefaultVersion)
			So(c.timeout, ShouldEqual, DefaultTimeout)
		})

		Convey("Sandbox points at the sandbox environment", func() {
			c := newClient("k", Sandbox())
			So(c.baseURL, ShouldEqual, SandboxURL)
			So(strings.Contains(c.baseURL, "sandbox"), ShouldBeTrue)
		})

		Convey("GetClient without UseClient is nil", func() {
			So(GetClient(context.Background()), ShouldBeNil)
		})

		Convey("UseClient installs the configured client", func() {
			ctx := UseClient(context.Background(), "k", Version("v1"))
			c := GetClient(ctx)
			So(c, ShouldNotBeNil)
			So(c.version, ShouldEqual, "v1")
			So(c.token, ShouldEqual, "k")
		})
	})
}
