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

// newMetricsCmd builds the 'metrics' command group.
func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Query aggregated metrics",
	}
	cmd.AddCommand(newMetricsQueryCmd())
	return cmd
}

func newMetricsQueryCmd() *cobra.Command {
	var (
		view        string
		measure     string
		aggregation string
		dimensions  []string
		from        string
		to          string
		granularity string
		queryLimit  int
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run an aggregation query",
		Long: `Run an aggregation query against the metrics endpoint. The view names
the fact table (traces, observations, scores), the measure the value to
aggregate (count, latency, totalCost, ...), and the aggregation how to fold
it (count, sum, avg, p95, ...). Dimensions group the result rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			query := api.MetricsQuery{
				View:          view,
				Measure:       measure,
				Aggregation:   aggregation,
				FromTimestamp: from,
				ToTimestamp:   to,
				Granularity:   granularity,
				Limit:         queryLimit,
			}
			for _, d := range dimensions {
				query.Dimensions = append(query.Dimensions, api.MetricDimension{Field: d})
			}

			result, err := client.QueryMetrics(context.Background(), query)
			if err != nil {
				return err
			}
			return emit(cfg, result.Data, format.Table)
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "fact table to query (traces, observations, scores)")
	cmd.Flags().StringVar(&measure, "measure", "", "value to aggregate")
	cmd.Flags().StringVar(&aggregation, "aggregation", "", "aggregation function")
	cmd.Flags().StringSliceVar(&dimensions, "dimension", nil, "grouping field (repeatable)")
	cmd.Flags().StringVar(&from, "from", "", "start of the query window (ISO 8601)")
	cmd.Flags().StringVar(&to, "to", "", "end of the query window (ISO 8601)")
	cmd.Flags().StringVar(&granularity, "granularity", "", "time bucket size (hour, day, week, ...)")
	cmd.Flags().IntVar(&queryLimit, "query-limit", 0, "maximum number of result rows")
	cmd.MarkFlagRequired("view")
	cmd.MarkFlagRequired("measure")
	cmd.MarkFlagRequired("aggregation")
	return cmd
}
