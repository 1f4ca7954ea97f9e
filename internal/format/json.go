// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package format

import (
	"encoding/json"
	"fmt"
)

// renderJSON pretty-prints the data as indented JSON.
func renderJSON(data any) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode JSON: %w", err)
	}
	return string(out), nil
}
