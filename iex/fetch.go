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
	"strconv"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// Query parameter names of the paging engine.
const (
	cursorParam = "cursor"
	offsetParam = "offset"
)

// Fetch executes the endpoint with the given parameters and returns the
// normalized records in provider order. It is a single blocking round trip
// per page: build the request, execute it with the Client from the context,
// normalize the response, and page transparently when the descriptor declares
// a paging mode. Calls share no mutable state, so concurrent Fetch calls on
// the same descriptor are safe.
//
// Parameter and credential errors are returned before any network call.
// Errors of later pages are annotated with the page number; the records
// already fetched are discarded.
func (d *Descriptor) Fetch(ctx context.Context, params Params) ([]Record, error) {
	c := GetClient(ctx)
	spec, err := buildRequest(c, d, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	pageSpec := spec
	pageCount := 0
	offset := 0
	for {
		pageCount++
		pg, err := fetchPage(ctx, c, pageSpec, d)
		if err != nil {
			if pageCount > 1 {
				return nil, errors.Annotate(err, "%s: failed to fetch page %d",
					d.Name, pageCount)
			}
			return nil, err
		}
		records = append(records, pg.Records...)
		logging.Infof(ctx, "%s: fetched page %d with %d record(s)",
			d.Name, pageCount, len(pg.Records))

		switch d.Paging {
		case PageCursor:
			if pg.Cursor == "" {
				return records, nil
			}
			pageSpec = spec.withQuery(cursorParam, pg.Cursor)
		case PageOffset:
			if len(pg.Records) == 0 {
				return records, nil
			}
			offset += len(pg.Records)
			pageSpec = spec.withQuery(offsetParam, strconv.Itoa(offset))
		default:
			return records, nil
		}
	}
}

func fetchPage(ctx context.Context, c *Client, spec *requestSpec, d *Descriptor) (*page, error) {
	raw, err := c.do(ctx, spec)
	if err != nil {
		return nil, err
	}
	return normalize(raw, d)
}
