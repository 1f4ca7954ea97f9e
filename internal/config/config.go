// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

// package config resolves the effective configuration for one command
// invocation. Values are merged per field from four tiers: explicit flag
// values, LANGFUSE_* environment variables, the selected stored profile,
// and built-in defaults. The resolver only merges; it never prompts, never
// touches the network, and leaves validity checks to the caller.
package config

import "github.com/spf13/viper"

const (
	// DefaultHost is the hosted API endpoint used when no tier supplies one.
	DefaultHost = "https://cloud.langfuse.com"
	// DefaultProfile is the implicit profile when none is named.
	DefaultProfile = "default"
	// DefaultLimit is the default maximum number of records for listings.
	DefaultLimit = 50

	// Environment variable names consumed by tier 2 of the resolver.
	EnvHost      = "LANGFUSE_HOST"
	EnvPublicKey = "LANGFUSE_PUBLIC_KEY"
	EnvSecretKey = "LANGFUSE_SECRET_KEY"
	EnvProfile   = "LANGFUSE_PROFILE"
)

// ProfileSource supplies the stored profile mapping for tier 3. *Store
// implements it; tests substitute an in-memory source.
type ProfileSource interface {
	Load() (map[string]Profile, error)
}

// Overrides carries tier-1 values from the call site (CLI flags). Empty
// strings mean "not provided". The presentation fields (Format, Limit, Page,
// Output, Verbose) pass through unmerged; flags own their defaults.
type Overrides struct {
	Profile   string
	Host      string
	PublicKey string
	SecretKey string

	Format  string
	Limit   int
	Page    int
	Output  string
	Verbose bool
}

// EffectiveConfig is the single merged configuration for one invocation.
// It is immutable once built.
type EffectiveConfig struct {
	Host      string
	PublicKey string
	SecretKey string
	Profile   string

	Format  string
	Limit   int
	Page    int
	Output  string
	Verbose bool
}

// IsValid reports whether both credentials are present. An invalid config
// must never be used to construct an API client.
func (c EffectiveConfig) IsValid() bool {
	return c.PublicKey != "" && c.SecretKey != ""
}

// Resolve merges the four precedence tiers into one EffectiveConfig. Tiers
// are walked per field, so the host may come from the environment while the
// secret key comes from the stored profile. Store failures (including a
// corrupt file) propagate; a corrupt store is never treated as empty.
func Resolve(source ProfileSource, o Overrides) (EffectiveConfig, error) {
	env := viper.New()
	env.BindEnv("host", EnvHost)
	env.BindEnv("public_key", EnvPublicKey)
	env.BindEnv("secret_key", EnvSecretKey)
	env.BindEnv("profile", EnvProfile)

	profiles, err := source.Load()
	if err != nil {
		return EffectiveConfig{}, err
	}

	profileName := firstNonEmpty(o.Profile, env.GetString("profile"), DefaultProfile)
	stored := profiles[profileName]

	cfg := EffectiveConfig{
		Host:      firstNonEmpty(o.Host, env.GetString("host"), stored.Host, DefaultHost),
		PublicKey: firstNonEmpty(o.PublicKey, env.GetString("public_key"), stored.PublicKey),
		SecretKey: firstNonEmpty(o.SecretKey, env.GetString("secret_key"), stored.SecretKey),
		Profile:   profileName,
		Format:    o.Format,
		Limit:     o.Limit,
		Page:      o.Page,
		Output:    o.Output,
		Verbose:   o.Verbose,
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Page <= 0 {
		cfg.Page = 1
	}
	return cfg, nil
}

// firstNonEmpty returns the first value that is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
