// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/format"
	"github.com/toeirei/tracelens/internal/logging"
)

// newTracesCmd builds the 'traces' command group.
func newTracesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traces",
		Short: "List and inspect traces",
	}
	cmd.AddCommand(newTracesListCmd())
	cmd.AddCommand(newTracesGetCmd())
	return cmd
}

func newTracesListCmd() *cobra.Command {
	var filter api.TraceFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List traces",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			traces, err := client.ListTraces(context.Background(), filter, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, traces, format.Table)
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by trace name")
	cmd.Flags().StringVar(&filter.UserID, "user-id", "", "filter by user ID")
	cmd.Flags().StringVar(&filter.SessionID, "session-id", "", "filter by session ID")
	cmd.Flags().StringSliceVar(&filter.Tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringVar(&filter.FromTimestamp, "from", "", "only traces at or after this ISO 8601 timestamp")
	cmd.Flags().StringVar(&filter.ToTimestamp, "to", "", "only traces before this ISO 8601 timestamp")
	return cmd
}

func newTracesGetCmd() *cobra.Command {
	var withObservations bool

	cmd := &cobra.Command{
		Use:   "get <trace-id>",
		Short: "Fetch a single trace by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			trace, err := client.GetTrace(ctx, args[0])
			if err != nil {
				return err
			}

			if withObservations && len(trace.Observations) == 0 {
				logging.Debugf("trace %s carried no inline observations, fetching", trace.ID)
				obs, err := client.ListObservations(ctx, api.ObservationFilter{TraceID: trace.ID}, api.MaxPageSize, 1)
				if err != nil {
					return err
				}
				trace.Observations = obs
			}

			return emit(cfg, trace, format.JSON)
		},
	}

	cmd.Flags().BoolVar(&withObservations, "with-observations", false, "include the trace's observations")
	return cmd
}
