// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Meta is the pagination envelope metadata the API attaches to list
// responses. All fields are optional; self-hosted deployments have been seen
// omitting totalPages entirely.
type Meta struct {
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	TotalItems *int `json:"totalItems"`
	TotalPages *int `json:"totalPages"`
}

// listPage is the generic envelope shared by every list-style resource.
type listPage[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ListAll aggregates successive pages of a listing into one slice. Pages are
// requested sequentially with a page size of min(limit, MaxPageSize),
// starting at startPage. Aggregation stops at the first of:
//
//  1. the accumulator reaching limit records (the last page is fetched in
//     full, then the result is truncated to exactly limit);
//  2. the server reporting totalPages and the current page reaching it;
//  3. with no totalPages reported, a page coming back shorter than its
//     effective page size (the size the server echoed in meta.limit, or the
//     requested size when it echoed nothing). This end-of-data heuristic can
//     cost one extra request when the data ends exactly on a page boundary.
//
// Any page failure aborts the aggregation and propagates unchanged; records
// collected from earlier pages are discarded, never returned beside an error.
func ListAll[T any](ctx context.Context, c *Client, path string, filters url.Values, limit, startPage int) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}

	pageSize := min(limit, MaxPageSize)
	pageNo := max(startPage, 1)
	records := make([]T, 0, pageSize)

	for {
		query := url.Values{}
		for k, vs := range filters {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
		query.Set("limit", strconv.Itoa(pageSize))
		query.Set("page", strconv.Itoa(pageNo))

		var page listPage[T]
		if err := c.Do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Data...)

		if len(records) >= limit {
			return records[:limit], nil
		}

		if page.Meta != nil && page.Meta.TotalPages != nil {
			if pageNo >= *page.Meta.TotalPages {
				return records, nil
			}
		} else {
			effective := pageSize
			if page.Meta != nil && page.Meta.Limit != nil && *page.Meta.Limit > 0 {
				effective = *page.Meta.Limit
			}
			if len(page.Data) < effective {
				return records, nil
			}
		}

		pageNo++
	}
}
