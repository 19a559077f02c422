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

package table

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stockparfait/iexcloud/iex"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFromRecords(t *testing.T) {
	t.Parallel()

	Convey("FromRecords", t, func() {
		Convey("columns are the union of field names in first-seen order", func() {
			tbl := FromRecords([]iex.Record{
				iex.NewRecord(
					iex.Field{Name: "date", Value: "2023-01-01"},
					iex.Field{Name: "open", Value: json.Number("10")},
				),
				iex.NewRecord(
					iex.Field{Name: "date", Value: "2023-01-02"},
					iex.Field{Name: "close", Value: json.Number("11")},
				),
			})
			So(tbl.Header(), ShouldResemble, []string{"date", "open", "close"})
			So(tbl.NumRows(), ShouldEqual, 2)
			So(tbl.Value(0, "close"), ShouldBeNil) // absent field is null
			So(tbl.Value(1, "close"), ShouldEqual, json.Number("11"))
		})

		Convey("type inference", func() {
			tbl := FromRecords([]iex.Record{
				iex.NewRecord(
					iex.Field{Name: "date", Value: "2023-01-01"},
					iex.Field{Name: "price", Value: json.Number("10.5")},
					iex.Field{Name: "volume", Value: "2000"},
					iex.Field{Name: "value", Value: "10"},
					iex.Field{Name: "empty", Value: nil},
				),
				iex.NewRecord(
					iex.Field{Name: "date", Value: "2023-01-02"},
					iex.Field{Name: "price", Value: json.Number("11")},
					iex.Field{Name: "volume", Value: "3000"},
					iex.Field{Name: "value", Value: "abc"},
					iex.Field{Name: "empty", Value: nil},
				),
			})
			So(tbl.Columns(), ShouldResemble, []Column{
				{"date", Time},
				{"price", Number},
				{"volume", Number}, // numeric strings are numeric
				{"value", String},  // a single non-numeric value demotes the column
				{"empty", Null},
			})
		})

		Convey("declared columns survive an empty record sequence", func() {
			tbl := FromRecords(nil, "date", "value")
			So(tbl.Header(), ShouldResemble, []string{"date", "value"})
			So(tbl.NumRows(), ShouldEqual, 0)
			So(tbl.Columns()[0].Type, ShouldEqual, Null)
		})

		Convey("the conversion is deterministic", func() {
			records := []iex.Record{
				iex.NewRecord(
					iex.Field{Name: "a", Value: json.Number("1")},
					iex.Field{Name: "b", Value: "x"},
				),
			}
			So(FromRecords(records), ShouldResemble, FromRecords(records))
		})

		Convey("typed accessors", func() {
			tbl := FromRecords([]iex.Record{iex.NewRecord(
				iex.Field{Name: "date", Value: "2023-01-05"},
				iex.Field{Name: "price", Value: json.Number("10.5")},
			)})

			f, ok := tbl.Float64(0, "price")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 10.5)

			tm, ok := tbl.TimeValue(0, "date")
			So(ok, ShouldBeTrue)
			So(tm, ShouldResemble, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC))

			_, ok = tbl.Float64(0, "date")
			So(ok, ShouldBeFalse)
			So(tbl.Value(0, "no-such-column"), ShouldBeNil)
		})
	})
}

func TestWrite(t *testing.T) {
	t.Parallel()

	Convey("Render methods work", t, func() {
		tbl := FromRecords([]iex.Record{
			iex.NewRecord(
				iex.Field{Name: "date", Value: "2023-01-01"},
				iex.Field{Name: "value", Value: json.Number("10")},
			),
			iex.NewRecord(
				iex.Field{Name: "date", Value: "2023-01-02"},
				iex.Field{Name: "value", Value: "abc"},
			),
		})

		Convey("WriteCSV", func() {
			Convey("Default Params", func() {
				var buf bytes.Buffer
				So(tbl.WriteCSV(&buf, Params{}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
date,value
2023-01-01,10
2023-01-02,abc
`)
			})

			Convey("Limited rows, no header", func() {
				var buf bytes.Buffer
				So(tbl.WriteCSV(&buf, Params{Rows: 1, NoHeader: true}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
2023-01-01,10
`)
			})

			Convey("nested values render as compact JSON", func() {
				nested := FromRecords([]iex.Record{iex.NewRecord(
					iex.Field{Name: "id", Value: "x"},
					iex.Field{Name: "tags", Value: []iex.Value{"t1", "t2"}},
				)})
				var buf bytes.Buffer
				So(nested.WriteCSV(&buf, Params{NoHeader: true}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
x,"[""t1"",""t2""]"
`)
			})
		})

		Convey("WriteText", func() {
			Convey("Default Params", func() {
				var buf bytes.Buffer
				So(tbl.WriteText(&buf, Params{}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
      date | value
---------- | -----
2023-01-01 |    10
2023-01-02 |   abc
`)
			})

			Convey("MaxColWidth trims long values", func() {
				var buf bytes.Buffer
				So(tbl.WriteText(&buf, Params{Rows: 1, NoHeader: true, MaxColWidth: 6}),
					ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
2023.. | 10
`)
			})

			Convey("MaxColWidth below the minimum is an error", func() {
				var buf bytes.Buffer
				So(tbl.WriteText(&buf, Params{MaxColWidth: 3}), ShouldNotBeNil)
			})
		})
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	Convey("Describe summarizes Number columns", t, func() {
		tbl := FromRecords([]iex.Record{
			iex.NewRecord(
				iex.Field{Name: "sym", Value: "A"},
				iex.Field{Name: "score", Value: json.Number("10")},
			),
			iex.NewRecord(
				iex.Field{Name: "sym", Value: "B"},
				iex.Field{Name: "score", Value: json.Number("20")},
			),
			iex.NewRecord(
				iex.Field{Name: "sym", Value: "C"},
				iex.Field{Name: "score", Value: json.Number("30")},
			),
		})
		d := tbl.Describe()
		So(d.Header(), ShouldResemble,
			[]string{"column", "count", "mean", "std", "min", "max"})
		So(d.NumRows(), ShouldEqual, 1) // "sym" is not a Number column
		So(d.Value(0, "column"), ShouldEqual, "score")
		So(d.Value(0, "count"), ShouldEqual, 3.0)

		mean, ok := d.Float64(0, "mean")
		So(ok, ShouldBeTrue)
		So(mean, ShouldAlmostEqual, 20.0)
		std, _ := d.Float64(0, "std")
		So(std, ShouldAlmostEqual, 10.0)
		min, _ := d.Float64(0, "min")
		So(min, ShouldAlmostEqual, 10.0)
		max, _ := d.Float64(0, "max")
		So(max, ShouldAlmostEqual, 30.0)
	})

	Convey("Describe of a table without Number columns has zero rows", t, func() {
		tbl := FromRecords([]iex.Record{iex.NewRecord(
			iex.Field{Name: "sym", Value: "A"},
		)})
		So(tbl.Describe().NumRows(), ShouldEqual, 0)
	})
}
