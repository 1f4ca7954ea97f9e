// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Tracelens using the Cobra
// library. It defines the root command, the resource subcommands (traces,
// sessions, observations, scores, metrics, prompts, datasets, config), the
// global flags, and the entry point for execution.

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/buildvars"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/config"
	"github.com/toeirei/tracelens/internal/i18n"
	"github.com/toeirei/tracelens/internal/logging"
)

// Global persistent flags. Credential flags feed tier 1 of the resolver;
// the rest are presentation and pagination controls.
var (
	flagProfile   string
	flagPublicKey string
	flagSecretKey string
	flagHost      string
	flagFormat    string
	flagLimit     int
	flagPage      int
	flagOutput    string
	flagVerbose   bool
	flagLang      string
)

var rootCmd *cobra.Command

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracelens",
		Short: "Tracelens is a command-line client for the Langfuse observability API.",
		Long: `Tracelens talks to a Langfuse deployment and renders its resources
(traces, sessions, observations, scores, metrics, prompts, datasets) as
tables, JSON, CSV or markdown.

Credentials are resolved per field from flags, LANGFUSE_* environment
variables, the selected stored profile, and built-in defaults, in that
order.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.Init(flagLang)
			logging.SetVerbose(flagVerbose)
		},
	}

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newTracesCmd())
	cmd.AddCommand(newSessionsCmd())
	cmd.AddCommand(newObservationsCmd())
	cmd.AddCommand(newScoresCmd())
	cmd.AddCommand(newMetricsCmd())
	cmd.AddCommand(newPromptsCmd())
	cmd.AddCommand(newDatasetsCmd())

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "configuration profile to use")
	cmd.PersistentFlags().StringVar(&flagPublicKey, "public-key", "", "API public key")
	cmd.PersistentFlags().StringVar(&flagSecretKey, "secret-key", "", "API secret key")
	cmd.PersistentFlags().StringVar(&flagHost, "host", "", "API host URL")
	cmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format (table, json, csv, markdown)")
	cmd.PersistentFlags().IntVar(&flagLimit, "limit", config.DefaultLimit, "maximum number of results for listings")
	cmd.PersistentFlags().IntVar(&flagPage, "page", 1, "page number to start listing from")
	cmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write output to a file instead of stdout")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&flagLang, "lang", "en", `message language ("en", "de")`)

	return cmd
}

// overrides collects the tier-1 values from the global flags.
func overrides() config.Overrides {
	return config.Overrides{
		Profile:   flagProfile,
		Host:      flagHost,
		PublicKey: flagPublicKey,
		SecretKey: flagSecretKey,
		Format:    flagFormat,
		Limit:     flagLimit,
		Page:      flagPage,
		Output:    flagOutput,
		Verbose:   flagVerbose,
	}
}

// resolveConfig builds the effective configuration for this invocation from
// the well-known credential store and the global flags.
func resolveConfig() (config.EffectiveConfig, error) {
	store, err := config.NewStore()
	if err != nil {
		return config.EffectiveConfig{}, err
	}
	return config.Resolve(store, overrides())
}

// newClient resolves the configuration and constructs an API client from it.
// Missing credentials surface here, before any request is attempted.
func newClient() (*api.Client, config.EffectiveConfig, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, config.EffectiveConfig{}, err
	}
	if !cfg.IsValid() {
		return nil, cfg, errors.New(i18n.T("config.missing_credentials"))
	}
	client, err := api.New(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}
