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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/stockparfait/iexcloud/iex"
)

// Describe computes summary statistics of every Number column: the count of
// non-null values, mean, standard deviation, minimum and maximum. The result
// is itself a table with one row per Number column, in column order. A table
// without Number columns yields zero rows.
func (t *Table) Describe() *Table {
	d := &Table{
		columns: []Column{
			{"column", String},
			{"count", Number},
			{"mean", Number},
			{"std", Number},
			{"min", Number},
			{"max", Number},
		},
	}
	d.index = make(map[string]int)
	for i, c := range d.columns {
		d.index[c.Name] = i
	}

	for ci, c := range t.columns {
		if c.Type != Number {
			continue
		}
		var xs []float64
		for _, row := range t.rows {
			if f, ok := toFloat64(row[ci]); ok {
				xs = append(xs, f)
			}
		}
		row := []iex.Value{c.Name, float64(len(xs)), nil, nil, nil, nil}
		if len(xs) > 0 {
			row[2] = stat.Mean(xs, nil)
			row[3] = stat.StdDev(xs, nil)
			row[4] = floats.Min(xs)
			row[5] = floats.Max(xs)
		}
		d.rows = append(d.rows, row)
	}
	return d
}
