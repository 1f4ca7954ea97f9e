// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

// package format renders already-fetched records for the terminal. Every
// renderer works on the generic JSON shape of its input, so one code path
// serves all resource types: rows are objects, columns are the sorted union
// of keys across all rows.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Format selects an output renderer.
type Format string

const (
	Table    Format = "table"
	JSON     Format = "json"
	CSV      Format = "csv"
	Markdown Format = "markdown"
)

// noData is printed when there is nothing to render.
const noData = "No data to display"

// cellLimit caps how much of a nested array or object lands in one cell.
const cellLimit = 50

// Parse validates a format name from a flag value.
func Parse(s string) (Format, error) {
	switch Format(s) {
	case Table, JSON, CSV, Markdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected table, json, csv or markdown)", s)
}

// Render formats data with the selected renderer and returns the result as a
// string ready for stdout or a file.
func Render(f Format, data any) (string, error) {
	switch f {
	case JSON:
		return renderJSON(data)
	case CSV:
		return renderCSV(data)
	case Markdown:
		return renderMarkdown(data)
	default:
		return renderTable(data)
	}
}

// toRows normalizes arbitrary data into a slice of generic values via its
// JSON form. Numbers are kept as json.Number so they render as sent.
func toRows(data any) ([]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("could not flatten data for rendering: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not flatten data for rendering: %w", err)
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return t, nil
	default:
		// A single object renders as a one-row table.
		return []any{t}, nil
	}
}

// headersOf collects the sorted union of object keys across all rows.
func headersOf(rows []any) []string {
	seen := map[string]struct{}{}
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			seen[k] = struct{}{}
		}
	}

	headers := make([]string, 0, len(seen))
	for k := range seen {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	return headers
}

// cell renders one value for a tabular cell. Nested structures are inlined
// as JSON and truncated.
func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return truncate(string(raw), cellLimit)
	}
}

// truncate shortens s to at most max characters, marking the cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// tabulate flattens data into headers and string cells, shared by the
// table, CSV and markdown renderers. ok is false when there is nothing
// tabular to show.
func tabulate(data any) (headers []string, body [][]string, ok bool, err error) {
	rows, err := toRows(data)
	if err != nil {
		return nil, nil, false, err
	}
	if len(rows) == 0 {
		return nil, nil, false, nil
	}

	headers = headersOf(rows)
	if len(headers) == 0 {
		return nil, nil, false, nil
	}

	for _, row := range rows {
		obj, _ := row.(map[string]any)
		line := make([]string, len(headers))
		for i, h := range headers {
			line[i] = cell(obj[h])
		}
		body = append(body, line)
	}
	return headers, body, true, nil
}
