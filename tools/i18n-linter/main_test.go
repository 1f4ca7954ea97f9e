// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	m := map[string]interface{}{
		"config.saved": "Configuration saved to profile '%s'",
		"nested": map[string]interface{}{
			"sub": "value",
			"arr": []interface{}{"one", "two"},
		},
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	if _, ok := keys["config.saved"]; !ok {
		t.Fatalf("expected config.saved in keys")
	}
	if _, ok := keys["nested.sub"]; !ok {
		t.Fatalf("expected nested.sub in keys")
	}
	if _, ok := keys["nested.arr[0]"]; !ok {
		t.Fatalf("expected nested.arr[0] in keys")
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "test.yaml")
	data, _ := yaml.Marshal(m)
	if err := os.WriteFile(p, data, 0600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	if _, ok := got["config.saved"]; !ok {
		t.Fatalf("expected loaded key config.saved")
	}
}

func TestFindUsedKeys(t *testing.T) {
	dir := t.TempDir()
	src := `package foo
func f(){
	_ = i18n.T("output.written", path)
	_ = i18n.T("config.verified")
}`
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "a.go"), []byte(src), 0644); err != nil {
		t.Fatalf("write go: %v", err)
	}
	// Keys in test files must not count as usage.
	testSrc := `package foo
func g(){ _ = i18n.T("only.in.tests") }`
	if err := os.WriteFile(filepath.Join(dir, "sub", "a_test.go"), []byte(testSrc), 0644); err != nil {
		t.Fatalf("write go test: %v", err)
	}

	used, err := findUsedKeys(dir)
	if err != nil {
		t.Fatalf("findUsedKeys failed: %v", err)
	}
	if _, ok := used["output.written"]; !ok {
		t.Fatalf("expected output.written in used keys")
	}
	if _, ok := used["config.verified"]; !ok {
		t.Fatalf("expected config.verified in used keys")
	}
	if _, ok := used["only.in.tests"]; ok {
		t.Fatalf("test-only keys must not count as used")
	}
}
