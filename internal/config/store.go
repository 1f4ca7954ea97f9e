// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrCorrupt marks a credential store file that exists but cannot be parsed.
// It is deliberately distinct from the file being absent, which is a normal
// first-run condition and yields an empty store.
var ErrCorrupt = errors.New("credential store is corrupt")

// Profile is one named bundle of host and credential values. Empty fields
// mean "not set for this profile" and are omitted from the file.
type Profile struct {
	Host      string `yaml:"host,omitempty"`
	PublicKey string `yaml:"public_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// storeFile is the on-disk shape: a single mapping of profile name to profile.
type storeFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Store persists profiles to a single YAML file. The file is loaded fully and
// rewritten fully on every mutation; concurrent CLI invocations are not
// serialized, last writer wins.
type Store struct {
	path string
}

// NewStore returns a store backed by the user's well-known config location,
// e.g. ~/.config/tracelens/profiles.yaml on Linux.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user config directory: %w", err)
	}
	return &Store{path: filepath.Join(configDir, "tracelens", "profiles.yaml")}, nil
}

// NewStoreAt returns a store backed by an explicit file path. Used by tests
// and by callers that manage their own location.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole profile mapping from disk. A missing file is not an
// error and yields an empty mapping; an unparseable file yields ErrCorrupt;
// any other filesystem failure is propagated unchanged.
func (s *Store) Load() (map[string]Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Profile{}, nil
		}
		return nil, fmt.Errorf("could not read credential store %s: %w", s.path, err)
	}

	var sf storeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if sf.Profiles == nil {
		sf.Profiles = map[string]Profile{}
	}
	return sf.Profiles, nil
}

// Save serializes the full mapping and writes it atomically. The temporary
// file is created with owner-only permissions, so no wider mode is ever
// observable, and the rename guarantees the final path never holds a
// truncated file.
func (s *Store) Save(profiles map[string]Profile) error {
	data, err := yaml.Marshal(storeFile{Profiles: profiles})
	if err != nil {
		return fmt.Errorf("could not serialize credential store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}

	// os.CreateTemp opens with mode 0600; the file is owner-only from the
	// instant it exists.
	tmp, err := os.CreateTemp(dir, ".profiles-*.yaml")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write credential store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write credential store: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace credential store %s: %w", s.path, err)
	}
	return nil
}

// SetProfile merges the provided fields into the named profile, creating it
// if absent. Empty arguments leave the corresponding stored field untouched.
func (s *Store) SetProfile(name, host, publicKey, secretKey string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}

	p := profiles[name]
	if host != "" {
		p.Host = host
	}
	if publicKey != "" {
		p.PublicKey = publicKey
	}
	if secretKey != "" {
		p.SecretKey = secretKey
	}
	profiles[name] = p

	return s.Save(profiles)
}

// Mask renders a secret for display: the first 8 characters followed by a
// fixed run of asterisks. Secrets at most 8 characters long are fully masked.
func Mask(secret string) string {
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:8] + "********"
}
