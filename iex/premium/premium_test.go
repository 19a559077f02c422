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

package premium

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockparfait/testutil"

	"github.com/stockparfait/iexcloud/iex"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	Convey("The dataset catalog", t, func() {
		Convey("Datasets is sorted and matches the catalog size", func() {
			names := Datasets()
			So(len(names), ShouldEqual, len(catalog))
			for i := 1; i < len(names); i++ {
				So(names[i-1], ShouldBeLessThan, names[i])
			}
		})

		Convey("Lookup finds a known dataset", func() {
			d, ok := Lookup("directorAndOfficerChanges")
			So(ok, ShouldBeTrue)
			So(d.Path, ShouldEqual,
				"time-series/PREMIUM_AUDIT_ANALYTICS_DIRECTOR_OFFICER_CHANGES/{symbol}")
			spec, ok := d.Param("symbol")
			So(ok, ShouldBeTrue)
			So(spec.Required, ShouldBeTrue)
		})

		Convey("the sentiment and news vendors are cataloged", func() {
			d, ok := Lookup("socialSentiment")
			So(ok, ShouldBeTrue)
			So(d.Path, ShouldEqual,
				"time-series/PREMIUM_STOCKTWITS_SENTIMENT/{symbol}")
			d, ok = Lookup("cityFalconNews")
			So(ok, ShouldBeTrue)
			So(d.Path, ShouldEqual, "time-series/PREMIUM_CITYFALCON_NEWS/{symbol}")
		})

		Convey("Lookup of an unknown dataset fails", func() {
			_, ok := Lookup("noSuchDataset")
			So(ok, ShouldBeFalse)
		})

		Convey("every dataset requires the symbol and accepts the shared parameters", func() {
			for _, d := range catalog {
				spec, ok := d.Param("symbol")
				So(ok, ShouldBeTrue)
				So(spec.Required, ShouldBeTrue)
				_, ok = d.Param("last")
				So(ok, ShouldBeTrue)
			}
		})
	})
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	Convey("Accessors against a test server", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := iex.UseClient(context.Background(), "testkey",
			iex.BaseURL(server.URL()), iex.HTTPClient(server.Client()))

		Convey("the plain form returns the provider's records", func() {
			server.ResponseBody = []string{
				`[{"effectiveDate": "2023-04-05", "personName": "J. Doe"}]`}

			records, err := DirectorAndOfficerChanges(ctx, iex.Params{"symbol": "AAPL"})
			So(err, ShouldBeNil)
			So(records, ShouldResemble, []iex.Record{iex.NewRecord(
				iex.Field{Name: "effectiveDate", Value: "2023-04-05"},
				iex.Field{Name: "personName", Value: "J. Doe"},
			)})
			So(server.RequestPath, ShouldEqual,
				"/stable/time-series/PREMIUM_AUDIT_ANALYTICS_DIRECTOR_OFFICER_CHANGES/AAPL")
			So(server.RequestQuery.Get("token"), ShouldEqual, "testkey")
		})

		Convey("the DF form tabularizes the same data", func() {
			server.ResponseBody = []string{`[
{"effectiveDate": "2023-04-05", "score": 5},
{"effectiveDate": "2023-04-06", "score": 7}]`}

			tbl, err := KScoreDF(ctx, iex.Params{"symbol": "AAPL", "last": 2})
			So(err, ShouldBeNil)
			So(tbl.Header(), ShouldResemble, []string{"effectiveDate", "score"})
			So(tbl.NumRows(), ShouldEqual, 2)
			So(tbl.Value(1, "score"), ShouldEqual, json.Number("7"))
			So(server.RequestQuery.Get("last"), ShouldEqual, "2")
		})

		Convey("the sentiment accessor routes through the engine", func() {
			server.ResponseBody = []string{
				`[{"date": "2023-04-05", "sentiment": 0.21, "totalScores": 14}]`}

			records, err := SocialSentiment(ctx, iex.Params{"symbol": "AAPL"})
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 1)
			So(server.RequestPath, ShouldEqual,
				"/stable/time-series/PREMIUM_STOCKTWITS_SENTIMENT/AAPL")
		})

		Convey("Call dispatches dynamically by name", func() {
			server.ResponseBody = []string{`[{"v": 1}]`}

			records, err := Call(ctx, "analystDays", iex.Params{"symbol": "MSFT"})
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 1)
			So(server.RequestPath, ShouldEqual,
				"/stable/time-series/PREMIUM_WALLSTREETHORIZON_ANALYST_DAY/MSFT")
		})

		Convey("Call of an unknown dataset fails without a network call", func() {
			_, err := Call(ctx, "noSuchDataset", iex.Params{"symbol": "AAPL"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "noSuchDataset")
		})

		Convey("a missing symbol fails before the network call", func() {
			_, err := KScore(ctx, nil)
			So(err, ShouldResemble, &iex.MissingParameterError{
				Endpoint: "kScore", Params: []string{"symbol"}})
		})
	})

	Convey("A missing entitlement surfaces as the provider's rejection", t, func() {
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, "Not entitled for the requested data.")
			}))
		defer server.Close()
		ctx := iex.UseClient(context.Background(), "testkey", iex.BaseURL(server.URL))

		_, err := Brain30DaySentiment(ctx, iex.Params{"symbol": "AAPL"})
		So(err, ShouldResemble, &iex.ProviderError{
			Status: 403, Body: "Not entitled for the requested data."})
	})
}
