// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/tracelens/internal/config"
	"github.com/toeirei/tracelens/internal/format"
	"github.com/toeirei/tracelens/internal/i18n"
)

// emit renders data in the requested output format and writes it to stdout,
// or to the file named by --output. fallback is the format a command uses
// when --format was not given; listings default to table, creations to JSON.
func emit(cfg config.EffectiveConfig, data any, fallback format.Format) error {
	f := fallback
	if cfg.Format != "" {
		parsed, err := format.Parse(cfg.Format)
		if err != nil {
			return err
		}
		f = parsed
	}

	rendered, err := format.Render(f, data)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(rendered+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		fmt.Println(i18n.T("output.written", cfg.Output))
		return nil
	}

	fmt.Println(rendered)
	return nil
}

// readContent loads request payload content from a file, or from stdin when
// the path is "-" or empty.
func readContent(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// parseJSONFlag decodes an optional JSON-valued flag. An empty value yields
// nil so the field is omitted from the request body.
func parseJSONFlag(name, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON in --%s: %w", name, err)
	}
	return out, nil
}
