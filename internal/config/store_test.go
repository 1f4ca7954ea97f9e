// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	cfg "github.com/toeirei/tracelens/internal/config"
)

func TestStoreLoad_MissingFile_ReturnsEmptyMapping(t *testing.T) {
	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))

	profiles, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing file should not error, got: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected empty mapping, got %d entries", len(profiles))
	}
}

func TestStoreLoad_CorruptFile_ReturnsErrCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("profiles: [not, a, mapping"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := cfg.NewStoreAt(path)
	_, err := s.Load()
	if err == nil {
		t.Fatalf("expected error for corrupt file")
	}
	if !errors.Is(err, cfg.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got: %v", err)
	}
}

func TestStoreSaveLoad_RoundTrip(t *testing.T) {
	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))

	want := map[string]cfg.Profile{
		"default": {Host: "https://cloud.langfuse.com", PublicKey: "pk-lf-1", SecretKey: "sk-lf-1"},
		"staging": {PublicKey: "pk-lf-2", SecretKey: "sk-lf-2"},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(got))
	}
	for name, p := range want {
		if got[name] != p {
			t.Fatalf("profile %q: expected %+v, got %+v", name, p, got[name])
		}
	}
}

func TestStoreSave_IdempotentRewrite(t *testing.T) {
	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))

	profiles := map[string]cfg.Profile{"default": {PublicKey: "pk", SecretKey: "sk"}}
	if err := s.Save(profiles); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	first, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read after first save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save(loaded); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	second, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read after second save: %v", err)
	}

	if string(first) != string(second) {
		t.Fatalf("save(load()) should be byte-identical;\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestStoreSave_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits are not meaningful on windows")
	}

	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))
	if err := s.Save(map[string]cfg.Profile{"default": {SecretKey: "sk-secret"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// First observable state after Save, no later chmod step involved.
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o600 {
		t.Fatalf("expected mode 0600, got %o", mode)
	}
}

func TestStoreSetProfile_MergesOnlyProvidedFields(t *testing.T) {
	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))
	if err := s.Save(map[string]cfg.Profile{
		"default": {Host: "https://self-hosted.example.com", PublicKey: "pk-old", SecretKey: "sk-old"},
	}); err != nil {
		t.Fatalf("seed Save failed: %v", err)
	}

	if err := s.SetProfile("default", "", "", "sk-new"); err != nil {
		t.Fatalf("SetProfile failed: %v", err)
	}

	profiles, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := profiles["default"]
	if p.SecretKey != "sk-new" {
		t.Fatalf("secret key not updated, got %q", p.SecretKey)
	}
	if p.Host != "https://self-hosted.example.com" || p.PublicKey != "pk-old" {
		t.Fatalf("unspecified fields must be preserved, got %+v", p)
	}
}

func TestStoreSetProfile_CreatesMissingProfile(t *testing.T) {
	s := cfg.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))

	if err := s.SetProfile("staging", "https://staging.example.com", "pk", "sk"); err != nil {
		t.Fatalf("SetProfile failed: %v", err)
	}

	profiles, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if profiles["staging"].Host != "https://staging.example.com" {
		t.Fatalf("expected new profile to be created, got %+v", profiles)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "*****"},
		{"12345678", "********"},
		{"sk-lf-abcdef123456", "sk-lf-ab********"},
	}
	for _, tt := range tests {
		if got := cfg.Mask(tt.in); got != tt.want {
			t.Fatalf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMask_NeverRevealsTail(t *testing.T) {
	secret := "sk-lf-abcdefghijklmnop"
	masked := cfg.Mask(secret)
	if strings.Contains(masked, secret[8:]) {
		t.Fatalf("mask leaked secret tail: %q", masked)
	}
}
