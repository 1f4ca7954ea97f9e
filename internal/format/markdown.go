// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package format

import "strings"

// renderMarkdown renders rows as a GitHub-flavored markdown table.
func renderMarkdown(data any) (string, error) {
	headers, body, ok, err := tabulate(data)
	if err != nil {
		return "", err
	}
	if !ok {
		return noData, nil
	}

	var b strings.Builder

	b.WriteString("|")
	for _, h := range headers {
		b.WriteString(" " + escapePipes(h) + " |")
	}
	b.WriteString("\n|")
	for range headers {
		b.WriteString(" --- |")
	}
	for _, row := range body {
		b.WriteString("\n|")
		for _, c := range row {
			b.WriteString(" " + escapePipes(c) + " |")
		}
	}

	return b.String(), nil
}

// escapePipes keeps cell content from breaking the markdown table grid.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
