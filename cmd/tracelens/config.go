// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/config"
	"github.com/toeirei/tracelens/internal/i18n"
	"github.com/toeirei/tracelens/internal/logging"
)

// newConfigCmd builds the 'config' command group for managing stored
// credential profiles.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored credential profiles",
	}
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store credentials in a profile",
		Long: `Store the host and API keys in the named profile (--profile, default
"default"). Values come from --host, --public-key and --secret-key, falling
back to the LANGFUSE_* environment variables. Unless --skip-verify is given,
the credentials are checked against the API before they are saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if !cfg.IsValid() {
				return errors.New(i18n.T("config.missing_credentials"))
			}

			if !skipVerify {
				fmt.Println(i18n.T("config.verifying", cfg.Host))
				client, err := api.New(cfg)
				if err != nil {
					return err
				}
				if err := client.TestConnection(context.Background()); err != nil {
					return errors.New(i18n.T("config.verify_failed", err))
				}
				fmt.Println(i18n.T("config.verified"))
			}

			store, err := config.NewStore()
			if err != nil {
				return err
			}
			if err := store.SetProfile(cfg.Profile, cfg.Host, cfg.PublicKey, cfg.SecretKey); err != nil {
				return err
			}
			logging.Debugf("profile %q written to %s", cfg.Profile, store.Path())

			fmt.Println(i18n.T("config.saved", cfg.Profile))
			if cfg.Profile != config.DefaultProfile {
				fmt.Println(i18n.T("config.profile_hint", cfg.Profile))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save without checking the credentials against the API")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected profile with masked keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			// A profile named explicitly must exist; the implicit default
			// may be absent on a fresh setup.
			if cfg.Profile != config.DefaultProfile {
				store, err := config.NewStore()
				if err != nil {
					return err
				}
				profiles, err := store.Load()
				if err != nil {
					return err
				}
				if _, ok := profiles[cfg.Profile]; !ok {
					return errors.New(i18n.T("config.profile_not_found", cfg.Profile))
				}
			}

			fmt.Println(i18n.T("config.show_profile", cfg.Profile))
			fmt.Println(i18n.T("config.host", cfg.Host))
			fmt.Println(i18n.T("config.public_key", maskOrUnset(cfg.PublicKey)))
			fmt.Println(i18n.T("config.secret_key", maskOrUnset(cfg.SecretKey)))
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profile names",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore()
			if err != nil {
				return err
			}
			profiles, err := store.Load()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println(i18n.T("config.no_profiles"))
				return nil
			}

			names := make([]string, 0, len(profiles))
			for name := range profiles {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println(i18n.T("config.profiles_header"))
			for _, name := range names {
				host := profiles[name].Host
				if host == "" {
					host = i18n.T("config.default_host", config.DefaultHost)
				}
				fmt.Printf("  %s  %s\n", name, host)
			}
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the credential store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore()
			if err != nil {
				return err
			}
			fmt.Println(store.Path())
			return nil
		},
	}
}

// maskOrUnset masks a key for display, or marks it as absent.
func maskOrUnset(secret string) string {
	if secret == "" {
		return i18n.T("config.not_set")
	}
	return config.Mask(secret)
}
