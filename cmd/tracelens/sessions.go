// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/format"
)

// newSessionsCmd builds the 'sessions' command group.
func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List and inspect sessions",
	}
	cmd.AddCommand(newSessionsListCmd())
	cmd.AddCommand(newSessionsGetCmd())
	return cmd
}

func newSessionsListCmd() *cobra.Command {
	var filter api.SessionFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			sessions, err := client.ListSessions(context.Background(), filter, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, sessions, format.Table)
		},
	}

	cmd.Flags().StringVar(&filter.FromTimestamp, "from", "", "only sessions at or after this ISO 8601 timestamp")
	cmd.Flags().StringVar(&filter.ToTimestamp, "to", "", "only sessions before this ISO 8601 timestamp")
	return cmd
}

func newSessionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Fetch a single session with its traces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			session, err := client.GetSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			return emit(cfg, session, format.JSON)
		},
	}
}
