// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/format"
)

// newDatasetsCmd builds the 'datasets' command group.
func newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Manage datasets, their items and their runs",
	}
	cmd.AddCommand(newDatasetsListCmd())
	cmd.AddCommand(newDatasetsGetCmd())
	cmd.AddCommand(newDatasetsCreateCmd())
	cmd.AddCommand(newDatasetsItemsCmd())
	cmd.AddCommand(newDatasetsItemGetCmd())
	cmd.AddCommand(newDatasetsItemCreateCmd())
	cmd.AddCommand(newDatasetsRunsCmd())
	cmd.AddCommand(newDatasetsRunGetCmd())
	return cmd
}

func newDatasetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			datasets, err := client.ListDatasets(context.Background(), cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, datasets, format.Table)
		},
	}
}

func newDatasetsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Fetch a dataset by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			dataset, err := client.GetDataset(context.Background(), args[0])
			if err != nil {
				return err
			}
			return emit(cfg, dataset, format.JSON)
		},
	}
}

func newDatasetsCreateCmd() *cobra.Command {
	var (
		description  string
		metadataJSON string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			metadata, err := parseJSONFlag("metadata", metadataJSON)
			if err != nil {
				return err
			}

			created, err := client.CreateDataset(context.Background(), api.DatasetCreate{
				Name:        args[0],
				Description: description,
				Metadata:    metadata,
			})
			if err != nil {
				return err
			}
			return emit(cfg, created, format.JSON)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "dataset description")
	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "dataset metadata as JSON")
	return cmd
}

func newDatasetsItemsCmd() *cobra.Command {
	var datasetName string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List dataset items",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			items, err := client.ListDatasetItems(context.Background(), datasetName, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, items, format.Table)
		},
	}

	cmd.Flags().StringVar(&datasetName, "dataset", "", "restrict to one dataset")
	return cmd
}

func newDatasetsItemGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item-get <item-id>",
		Short: "Fetch a dataset item by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			item, err := client.GetDatasetItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			return emit(cfg, item, format.JSON)
		},
	}
}

func newDatasetsItemCreateCmd() *cobra.Command {
	var (
		datasetName  string
		inputJSON    string
		expectedJSON string
		metadataJSON string
	)

	cmd := &cobra.Command{
		Use:   "item-create",
		Short: "Add an item to a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			input, err := parseJSONFlag("input", inputJSON)
			if err != nil {
				return err
			}
			if input == nil {
				return fmt.Errorf("--input is required")
			}
			expected, err := parseJSONFlag("expected-output", expectedJSON)
			if err != nil {
				return err
			}
			metadata, err := parseJSONFlag("metadata", metadataJSON)
			if err != nil {
				return err
			}

			created, err := client.CreateDatasetItem(context.Background(), api.DatasetItemCreate{
				DatasetName:    datasetName,
				Input:          input,
				ExpectedOutput: expected,
				Metadata:       metadata,
			})
			if err != nil {
				return err
			}
			return emit(cfg, created, format.JSON)
		},
	}

	cmd.Flags().StringVar(&datasetName, "dataset", "", "dataset to add the item to")
	cmd.Flags().StringVar(&inputJSON, "input", "", "item input as JSON")
	cmd.Flags().StringVar(&expectedJSON, "expected-output", "", "expected output as JSON")
	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "item metadata as JSON")
	cmd.MarkFlagRequired("dataset")
	return cmd
}

func newDatasetsRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs <dataset-name>",
		Short: "List the runs recorded against a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			runs, err := client.ListDatasetRuns(context.Background(), args[0], cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, runs, format.Table)
		},
	}
}

func newDatasetsRunGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-get <dataset-name> <run-name>",
		Short: "Fetch one run of a dataset with its run items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			run, err := client.GetDatasetRun(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			return emit(cfg, run, format.JSON)
		},
	}
}
