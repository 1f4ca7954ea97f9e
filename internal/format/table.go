// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable renders rows as a rounded-border terminal table.
func renderTable(data any) (string, error) {
	headers, body, ok, err := tabulate(data)
	if err != nil {
		return "", err
	}
	if !ok {
		return noData, nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(body...)

	return t.Render(), nil
}
