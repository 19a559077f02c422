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
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	Convey("Record preserves the field order", t, func() {
		r := NewRecord(
			Field{"zeta", "z"},
			Field{"alpha", json.Number("1")},
			Field{"mid", nil},
		)
		So(r.Names(), ShouldResemble, []string{"zeta", "alpha", "mid"})
		So(r.Len(), ShouldEqual, 3)

		Convey("Get", func() {
			v, ok := r.Get("alpha")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, json.Number("1"))
			_, ok = r.Get("nope")
			So(ok, ShouldBeFalse)
			So(r.Has("mid"), ShouldBeTrue)
		})

		Convey("Set overwrites in place", func() {
			r.Set("alpha", "updated")
			So(r.Names(), ShouldResemble, []string{"zeta", "alpha", "mid"})
			v, _ := r.Get("alpha")
			So(v, ShouldEqual, "updated")
		})

		Convey("MarshalJSON keeps the order", func() {
			b, err := json.Marshal(r)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"zeta":"z","alpha":1,"mid":null}`)
		})

		Convey("MarshalJSON of nested values", func() {
			nested := NewRecord(
				Field{"outer", NewRecord(Field{"b", json.Number("2")}, Field{"a", json.Number("1")})},
				Field{"list", []Value{json.Number("1"), "x"}},
			)
			b, err := json.Marshal(nested)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"outer":{"b":2,"a":1},"list":[1,"x"]}`)
		})
	})
}
