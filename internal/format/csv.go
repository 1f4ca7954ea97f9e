// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package format

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// renderCSV renders rows as RFC 4180 CSV with a header line.
func renderCSV(data any) (string, error) {
	headers, body, ok, err := tabulate(data)
	if err != nil {
		return "", err
	}
	if !ok {
		return noData, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("could not write CSV: %w", err)
	}
	for _, row := range body {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("could not write CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("could not write CSV: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
