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

// newScoresCmd builds the 'scores' command group.
func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List, inspect and create scores",
	}
	cmd.AddCommand(newScoresListCmd())
	cmd.AddCommand(newScoresGetCmd())
	cmd.AddCommand(newScoresCreateCmd())
	return cmd
}

func newScoresListCmd() *cobra.Command {
	var filter api.ScoreFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			scores, err := client.ListScores(context.Background(), filter, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, scores, format.Table)
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by score name")
	cmd.Flags().StringVar(&filter.FromTimestamp, "from", "", "only scores at or after this ISO 8601 timestamp")
	cmd.Flags().StringVar(&filter.ToTimestamp, "to", "", "only scores before this ISO 8601 timestamp")
	return cmd
}

func newScoresGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <score-id>",
		Short: "Fetch a single score by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			score, err := client.GetScore(context.Background(), args[0])
			if err != nil {
				return err
			}
			return emit(cfg, score, format.JSON)
		},
	}
}

func newScoresCreateCmd() *cobra.Command {
	var req api.ScoreCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Attach a score to a trace, observation or session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			score, err := client.CreateScore(context.Background(), req)
			if err != nil {
				return err
			}
			return emit(cfg, score, format.JSON)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "score name")
	cmd.Flags().Float64Var(&req.Value, "value", 0, "numeric score value")
	cmd.Flags().StringVar(&req.TraceID, "trace-id", "", "trace to score")
	cmd.Flags().StringVar(&req.ObservationID, "observation-id", "", "observation to score")
	cmd.Flags().StringVar(&req.SessionID, "session-id", "", "session to score")
	cmd.Flags().StringVar(&req.DataType, "data-type", "", "score data type (NUMERIC, BOOLEAN, CATEGORICAL)")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "optional comment")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("value")
	return cmd
}
