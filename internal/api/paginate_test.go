// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/toeirei/tracelens/internal/api"
)

type record struct {
	ID string `json:"id"`
}

// pagedHandler serves fixed-size pages of synthetic records and counts
// requests. When echoPageSize is true the response meta carries the server's
// page size (but never totalPages); when totalPages is > 0 the meta reports
// it instead.
type pagedHandler struct {
	perPage      int
	pages        int
	totalPages   int
	echoPageSize bool
	requests     int
}

func (h *pagedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.requests++
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	var data []record
	if page <= h.pages {
		for i := 0; i < h.perPage; i++ {
			data = append(data, record{ID: fmt.Sprintf("rec-%d-%d", page, i)})
		}
	}

	body := map[string]any{"data": data}
	switch {
	case h.totalPages > 0:
		body["meta"] = map[string]any{"page": page, "totalPages": h.totalPages}
	case h.echoPageSize:
		body["meta"] = map[string]any{"page": page, "limit": h.perPage}
	}
	json.NewEncoder(w).Encode(body)
}

func TestListAll_ExactStopAtLimit(t *testing.T) {
	// 3 records per page, 5 pages, no totalPages. limit=7 must make exactly
	// 3 requests, fetch the third page in full, and truncate to 7 records.
	h := &pagedHandler{perPage: 3, pages: 5, echoPageSize: true}
	c, _ := newTestClient(t, h)

	got, err := api.ListAll[record](context.Background(), c, "/traces", nil, 7, 1)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected exactly 7 records, got %d", len(got))
	}
	if h.requests != 3 {
		t.Fatalf("expected exactly 3 requests, got %d", h.requests)
	}
}

func TestListAll_ShortPageEndsAggregation(t *testing.T) {
	// 2 records against a requested page size of 10, no meta at all: the
	// short page is treated as the end of data after a single request.
	h := &pagedHandler{perPage: 2, pages: 1}
	c, _ := newTestClient(t, h)

	got, err := api.ListAll[record](context.Background(), c, "/traces", nil, 10, 1)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the 2 available records, got %d", len(got))
	}
	if h.requests != 1 {
		t.Fatalf("expected exactly 1 request, got %d", h.requests)
	}
}

func TestListAll_TotalPagesStopsBeforeNextRequest(t *testing.T) {
	// totalPages=1 reported on page 1: page 2 must never be requested, no
	// matter the limit.
	h := &pagedHandler{perPage: 3, pages: 1, totalPages: 1}
	c, _ := newTestClient(t, h)

	got, err := api.ListAll[record](context.Background(), c, "/traces", nil, 50, 1)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if h.requests != 1 {
		t.Fatalf("expected exactly 1 request, got %d", h.requests)
	}
}

func TestListAll_BoundaryPageCostsOneExtraRequest(t *testing.T) {
	// Known edge of the heuristic: data ending exactly on a page boundary is
	// only detected by the following empty page.
	h := &pagedHandler{perPage: 3, pages: 2, echoPageSize: true}
	c, _ := newTestClient(t, h)

	got, err := api.ListAll[record](context.Background(), c, "/traces", nil, 50, 1)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 records, got %d", len(got))
	}
	if h.requests != 3 {
		t.Fatalf("expected 3 requests (boundary page + empty page), got %d", h.requests)
	}
}

func TestListAll_PageFailureDiscardsPartialResults(t *testing.T) {
	// Page 1 succeeds, page 2 fails: the failure propagates and the
	// records already collected are discarded.
	requests := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "database exploded")
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []record{{ID: "rec-1"}, {ID: "rec-2"}, {ID: "rec-3"}},
			"meta": map[string]any{"page": 1, "limit": 3},
		})
	}))

	got, err := api.ListAll[record](context.Background(), c, "/traces", nil, 10, 1)
	if err == nil {
		t.Fatalf("expected page 2 failure to propagate")
	}
	if !api.IsKind(err, api.KindAPI) {
		t.Fatalf("expected KindAPI, got: %v", err)
	}
	if got != nil {
		t.Fatalf("partial results must be discarded, got %d records", len(got))
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
}

func TestListAll_PageSizeCappedAtMaximum(t *testing.T) {
	var gotLimit string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		json.NewEncoder(w).Encode(map[string]any{"data": []record{}})
	}))

	if _, err := api.ListAll[record](context.Background(), c, "/traces", nil, 5000, 1); err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if gotLimit != strconv.Itoa(api.MaxPageSize) {
		t.Fatalf("expected page size capped at %d, got %s", api.MaxPageSize, gotLimit)
	}
}

func TestListAll_FiltersForwardedOnEveryPage(t *testing.T) {
	var sawFilter bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawFilter = r.URL.Query().Get("userId") == "user-7"
		json.NewEncoder(w).Encode(map[string]any{"data": []record{}})
	}))

	filters := map[string][]string{"userId": {"user-7"}}
	if _, err := api.ListAll[record](context.Background(), c, "/traces", filters, 10, 1); err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if !sawFilter {
		t.Fatalf("filters were not forwarded to the request")
	}
}
