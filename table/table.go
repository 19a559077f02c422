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

// Package table converts record sequences into tables of named typed columns
// for analytical consumption, and renders them as CSV or readable text.
//
// The conversion is deterministic: the same record sequence always produces
// the same columns in the same order with the same inferred types, so tabular
// output is reproducible in tests and safe to cache.
package table

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/stockparfait/iexcloud/iex"
)

// Type of a column, inferred from its values.
type Type int

// Values of Type.
const (
	Null   Type = iota // no non-null values seen
	Number             // every non-null value is numeric
	Time               // every non-null value parses as a date or time
	String             // anything else; values are kept as-is
)

// String prints a human-readable representation of the column type.
func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Number:
		return "number"
	case Time:
		return "time"
	case String:
		return "string"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Column is a single named typed column.
type Column struct {
	Name string
	Type Type
}

// Table is an ordered set of named typed columns and an ordered sequence of
// rows. It is created from a record sequence by FromRecords and is never
// modified afterwards.
type Table struct {
	columns []Column
	index   map[string]int // column name -> position
	rows    [][]iex.Value
}

// timeLayouts are the date and time formats recognized by type inference, in
// the order they are tried.
var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05.999",
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05.999Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"20060102",
}

// FromRecords converts a record sequence into a table:
//
//   - the column set is the union of the field names across all the records,
//     in first-seen order; the optional declared names seed the set, so an
//     empty sequence still yields the declared columns (with zero rows);
//   - rows keep the input order, one per record; a field absent from a record
//     is null in its row;
//   - a column's type is inferred by scanning its non-null values: all
//     numeric yields Number, otherwise all parsing in a recognized date or
//     time layout yields Time, otherwise String; a column with no non-null
//     values is Null.
func FromRecords(records []iex.Record, declared ...string) *Table {
	t := &Table{index: make(map[string]int)}
	for _, name := range declared {
		t.addColumn(name)
	}
	for _, r := range records {
		for _, f := range r.Fields() {
			t.addColumn(f.Name)
		}
	}
	for _, r := range records {
		row := make([]iex.Value, len(t.columns))
		for _, f := range r.Fields() {
			row[t.index[f.Name]] = f.Value
		}
		t.rows = append(t.rows, row)
	}
	for i := range t.columns {
		t.columns[i].Type = t.inferType(i)
	}
	return t
}

func (t *Table) addColumn(name string) {
	if _, ok := t.index[name]; ok {
		return
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, Column{Name: name})
}

func (t *Table) inferType(col int) Type {
	seen := false
	number := true
	timely := true
	for _, row := range t.rows {
		v := row[col]
		if v == nil {
			continue
		}
		seen = true
		if number && !isNumeric(v) {
			number = false
		}
		if timely && !isTime(v) {
			timely = false
		}
		if !number && !timely {
			return String
		}
	}
	if !seen {
		return Null
	}
	if number {
		return Number
	}
	return Time
}

func isNumeric(v iex.Value) bool {
	switch x := v.(type) {
	case json.Number, int, int64, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(x, 64)
		return err == nil
	}
	return false
}

func isTime(v iex.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := parseTime(s)
	return err == nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var tm time.Time
		tm, err = time.Parse(layout, s)
		if err == nil {
			return tm, nil
		}
	}
	return time.Time{}, err
}

// Columns of the table in order. The caller must not modify the result.
func (t *Table) Columns() []Column { return t.columns }

// Header is the list of column names in order.
func (t *Table) Header() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// NumRows in the table.
func (t *Table) NumRows() int { return len(t.rows) }

// Row returns the i'th row, one value per column, in column order. Missing
// fields are nil. The caller must not modify the result.
func (t *Table) Row(i int) []iex.Value { return t.rows[i] }

// Value of the named column in the i'th row. It is nil when the column does
// not exist or the field was absent from the record.
func (t *Table) Value(i int, column string) iex.Value {
	c, ok := t.index[column]
	if !ok {
		return nil
	}
	return t.rows[i][c]
}

// TimeValue parses the named column's value in the i'th row with the
// recognized layouts. The second value is false for nulls, non-strings and
// unparseable strings.
func (t *Table) TimeValue(i int, column string) (time.Time, bool) {
	s, ok := t.Value(i, column).(string)
	if !ok {
		return time.Time{}, false
	}
	tm, err := parseTime(s)
	if err != nil {
		return time.Time{}, false
	}
	return tm, true
}

// Float64 converts the named column's value in the i'th row to a float64. The
// second value is false for nulls and non-numeric values.
func (t *Table) Float64(i int, column string) (float64, bool) {
	return toFloat64(t.Value(i, column))
}

func toFloat64(v iex.Value) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0.0, false
}
