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

// newObservationsCmd builds the 'observations' command group.
func newObservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "observations",
		Aliases: []string{"obs"},
		Short:   "List and inspect observations (spans, events, generations)",
	}
	cmd.AddCommand(newObservationsListCmd())
	cmd.AddCommand(newObservationsGetCmd())
	return cmd
}

func newObservationsListCmd() *cobra.Command {
	var filter api.ObservationFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List observations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			obs, err := client.ListObservations(context.Background(), filter, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, obs, format.Table)
		},
	}

	cmd.Flags().StringVar(&filter.TraceID, "trace-id", "", "filter by trace ID")
	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by observation name")
	cmd.Flags().StringVar(&filter.Type, "type", "", "filter by type (SPAN, EVENT, GENERATION)")
	cmd.Flags().StringVar(&filter.UserID, "user-id", "", "filter by user ID")
	cmd.Flags().StringVar(&filter.FromStartTime, "from", "", "only observations starting at or after this ISO 8601 timestamp")
	cmd.Flags().StringVar(&filter.ToStartTime, "to", "", "only observations starting before this ISO 8601 timestamp")
	return cmd
}

func newObservationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <observation-id>",
		Short: "Fetch a single observation by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			obs, err := client.GetObservation(context.Background(), args[0])
			if err != nil {
				return err
			}
			return emit(cfg, obs, format.JSON)
		},
	}
}
