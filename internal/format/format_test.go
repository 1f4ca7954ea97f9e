// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package format_test

import (
	"strings"
	"testing"

	"github.com/toeirei/tracelens/internal/format"
)

type sample struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Hits int    `json:"hits,omitempty"`
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"table", "json", "csv", "markdown"} {
		if _, err := format.Parse(valid); err != nil {
			t.Fatalf("Parse(%q) failed: %v", valid, err)
		}
	}
	if _, err := format.Parse("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRender_EmptySliceSaysNoData(t *testing.T) {
	for _, f := range []format.Format{format.Table, format.CSV, format.Markdown} {
		got, err := format.Render(f, []sample{})
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", f, err)
		}
		if got != "No data to display" {
			t.Fatalf("Render(%s) = %q, want no-data message", f, got)
		}
	}
}

func TestRenderTable_UnionOfKeysAcrossRows(t *testing.T) {
	rows := []sample{
		{ID: "a", Name: "first"},
		{ID: "b", Hits: 7},
	}
	got, err := format.Render(format.Table, rows)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{"id", "name", "hits", "first", "7"} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderTable_SingleObjectBecomesOneRow(t *testing.T) {
	got, err := format.Render(format.Table, sample{ID: "only", Name: "row"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "only") || !strings.Contains(got, "row") {
		t.Fatalf("expected object rendered as one row:\n%s", got)
	}
}

func TestRenderJSON_Indented(t *testing.T) {
	got, err := format.Render(format.JSON, []sample{{ID: "a"}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "\"id\": \"a\"") {
		t.Fatalf("unexpected JSON output: %s", got)
	}
}

func TestRenderCSV_HeaderAndRows(t *testing.T) {
	got, err := format.Render(format.CSV, []sample{{ID: "a", Name: "x,y"}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "id,name" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], `"x,y"`) {
		t.Fatalf("comma-bearing value must be quoted, got %q", lines[1])
	}
}

func TestRenderMarkdown_EscapesPipes(t *testing.T) {
	got, err := format.Render(format.Markdown, []sample{{ID: "a|b"}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "| --- |") {
		t.Fatalf("missing separator row:\n%s", got)
	}
	if !strings.Contains(got, `a\|b`) {
		t.Fatalf("pipe in cell must be escaped:\n%s", got)
	}
}

func TestRender_NestedValuesTruncated(t *testing.T) {
	row := map[string]any{
		"id":       "a",
		"metadata": map[string]any{"key": strings.Repeat("v", 200)},
	}
	got, err := format.Render(format.CSV, []any{row})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("expected nested value truncation marker:\n%s", got)
	}
}

func TestRender_NumbersKeepTheirWireForm(t *testing.T) {
	got, err := format.Render(format.CSV, []map[string]any{{"value": 0.95}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "0.95") {
		t.Fatalf("expected 0.95 in output, got:\n%s", got)
	}
}
