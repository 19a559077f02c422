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

// Package premium is the catalog of the IEX Cloud premium datasets: corporate
// event calendars by Wall Street Horizon, director and officer changes and
// accounting quality by Audit Analytics, sentiment scores and ML rankings by
// Brain Company, ESG event feeds by ExtractAlpha, and others.
//
// Each dataset is one descriptor in the catalog, served by the generic engine
// in the iex package; there is no per-dataset logic. Every dataset is exposed
// as a pair of functions: the plain form returns the provider's records, and
// the DF form returns the same data as a table for analysis. Both take the
// dataset's declared parameters as iex.Params; "symbol" is required
// everywhere, the rest are the optional shared time-series parameters such as
// "from", "to" and "last". Datasets can also be dispatched dynamically by
// name through Call and CallDF.
//
// Premium datasets require an entitled account; calling one without the
// entitlement surfaces as *iex.ProviderError with a 4xx status.
package premium

import (
	"context"

	"github.com/stockparfait/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/stockparfait/iexcloud/iex"
	"github.com/stockparfait/iexcloud/table"
)

// timeSeriesParams are the shared optional parameters accepted by every
// time-series endpoint.
var timeSeriesParams = []iex.ParamSpec{
	{Name: "range", Kind: iex.ParamString},
	{Name: "calendar", Kind: iex.ParamBool},
	{Name: "limit", Kind: iex.ParamInt},
	{Name: "from", Kind: iex.ParamDate},
	{Name: "to", Kind: iex.ParamDate},
	{Name: "on", Kind: iex.ParamDate},
	{Name: "last", Kind: iex.ParamInt},
	{Name: "first", Kind: iex.ParamInt},
	{Name: "sort", Kind: iex.ParamString},
	{Name: "interval", Kind: iex.ParamInt},
}

// timeSeries declares one premium dataset on the time-series API convention:
// the dataset ID and the symbol form the path, everything else is the shared
// optional parameter set.
func timeSeries(name, id string) *iex.Descriptor {
	params := []iex.ParamSpec{
		{Name: "symbol", Required: true, Kind: iex.ParamString},
	}
	return &iex.Descriptor{
		Name:   name,
		Path:   "time-series/" + id + "/{symbol}",
		Params: append(params, timeSeriesParams...),
	}
}

var byName = make(map[string]*iex.Descriptor)

func init() {
	for _, d := range catalog {
		byName[d.Name] = d
	}
}

// Lookup finds a dataset descriptor by its name.
func Lookup(dataset string) (*iex.Descriptor, bool) {
	d, ok := byName[dataset]
	return d, ok
}

// Datasets lists all the catalog dataset names, sorted.
func Datasets() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

// Call fetches a dataset by name. It is the dynamic-dispatch equivalent of
// the dataset's plain accessor function.
func Call(ctx context.Context, dataset string, params iex.Params) ([]iex.Record, error) {
	d, ok := Lookup(dataset)
	if !ok {
		return nil, errors.Reason("unknown premium dataset '%s'", dataset)
	}
	return d.Fetch(ctx, params)
}

// CallDF fetches a dataset by name and tabularizes the result. It fails
// exactly where and when Call does; the tabularizer runs only on a
// successfully normalized response.
func CallDF(ctx context.Context, dataset string, params iex.Params) (*table.Table, error) {
	d, ok := Lookup(dataset)
	if !ok {
		return nil, errors.Reason("unknown premium dataset '%s'", dataset)
	}
	records, err := d.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	return table.FromRecords(records, d.Columns...), nil
}
