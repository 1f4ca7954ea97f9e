// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/toeirei/tracelens/internal/api"
	"github.com/toeirei/tracelens/internal/format"
)

// newPromptsCmd builds the 'prompts' command group.
func newPromptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage prompt versions and labels",
	}
	cmd.AddCommand(newPromptsListCmd())
	cmd.AddCommand(newPromptsGetCmd())
	cmd.AddCommand(newPromptsCreateTextCmd())
	cmd.AddCommand(newPromptsCreateChatCmd())
	cmd.AddCommand(newPromptsLabelCmd())
	return cmd
}

func newPromptsListCmd() *cobra.Command {
	var filter api.PromptFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts with their versions and labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			prompts, err := client.ListPrompts(context.Background(), filter, cfg.Limit, cfg.Page)
			if err != nil {
				return err
			}
			return emit(cfg, prompts, format.Table)
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by prompt name")
	cmd.Flags().StringVar(&filter.Label, "label", "", "filter by label")
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "filter by tag")
	return cmd
}

func newPromptsGetCmd() *cobra.Command {
	var (
		version int
		label   string
		raw     bool
	)

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Fetch one prompt version",
		Long: `Fetch a prompt by name. Without --version or --label the
production-labeled version is served. With --raw only the prompt content is
printed, ready to pipe into another tool.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			prompt, err := client.GetPrompt(context.Background(), args[0], version, label)
			if err != nil {
				return err
			}

			if raw {
				return printRawPrompt(prompt.Prompt)
			}
			return emit(cfg, prompt, format.JSON)
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "specific version to fetch")
	cmd.Flags().StringVar(&label, "label", "", "fetch the version carrying this label")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the prompt content")
	return cmd
}

func newPromptsCreateTextCmd() *cobra.Command {
	var (
		file          string
		labels        []string
		tags          []string
		commitMessage string
		configJSON    string
	)

	cmd := &cobra.Command{
		Use:   "create-text <name>",
		Short: "Create a text prompt version",
		Long: `Create a new version of a text prompt. The prompt content is read from
--file, or from stdin when --file is omitted or "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			content, err := readContent(file)
			if err != nil {
				return err
			}
			promptConfig, err := parseJSONFlag("config", configJSON)
			if err != nil {
				return err
			}

			encoded, err := json.Marshal(content)
			if err != nil {
				return err
			}
			req := api.PromptCreate{
				Name:          args[0],
				Type:          "text",
				Prompt:        encoded,
				Config:        promptConfig,
				Labels:        labels,
				Tags:          tags,
				CommitMessage: commitMessage,
			}

			created, err := client.CreatePrompt(context.Background(), req)
			if err != nil {
				return err
			}
			return emit(cfg, created, format.JSON)
		},
	}

	addPromptCreateFlags(cmd, &file, &labels, &tags, &commitMessage, &configJSON)
	return cmd
}

func newPromptsCreateChatCmd() *cobra.Command {
	var (
		file          string
		labels        []string
		tags          []string
		commitMessage string
		configJSON    string
	)

	cmd := &cobra.Command{
		Use:   "create-chat <name>",
		Short: "Create a chat prompt version",
		Long: `Create a new version of a chat prompt. The content is a JSON array of
{"role": ..., "content": ...} messages, read from --file or stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			content, err := readContent(file)
			if err != nil {
				return err
			}
			var messages []api.ChatMessage
			if err := json.Unmarshal([]byte(content), &messages); err != nil {
				return fmt.Errorf("chat prompt content must be a JSON message array: %w", err)
			}
			promptConfig, err := parseJSONFlag("config", configJSON)
			if err != nil {
				return err
			}

			encoded, err := json.Marshal(messages)
			if err != nil {
				return err
			}
			req := api.PromptCreate{
				Name:          args[0],
				Type:          "chat",
				Prompt:        encoded,
				Config:        promptConfig,
				Labels:        labels,
				Tags:          tags,
				CommitMessage: commitMessage,
			}

			created, err := client.CreatePrompt(context.Background(), req)
			if err != nil {
				return err
			}
			return emit(cfg, created, format.JSON)
		},
	}

	addPromptCreateFlags(cmd, &file, &labels, &tags, &commitMessage, &configJSON)
	return cmd
}

func newPromptsLabelCmd() *cobra.Command {
	var labels []string

	cmd := &cobra.Command{
		Use:   "label <name> <version>",
		Short: "Replace the labels of a prompt version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("version must be a number: %q", args[1])
			}

			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			updated, err := client.UpdatePromptLabels(context.Background(), args[0], version, labels)
			if err != nil {
				return err
			}
			return emit(cfg, updated, format.JSON)
		},
	}

	cmd.Flags().StringSliceVar(&labels, "label", nil, "label to apply (repeatable)")
	cmd.MarkFlagRequired("label")
	return cmd
}

func addPromptCreateFlags(cmd *cobra.Command, file *string, labels, tags *[]string, commitMessage, configJSON *string) {
	cmd.Flags().StringVar(file, "file", "", `read prompt content from this file ("-" for stdin)`)
	cmd.Flags().StringSliceVar(labels, "label", nil, "label for the new version (repeatable)")
	cmd.Flags().StringSliceVar(tags, "tag", nil, "tag for the prompt (repeatable)")
	cmd.Flags().StringVar(commitMessage, "commit-message", "", "commit message for the new version")
	cmd.Flags().StringVar(configJSON, "config", "", "prompt config as a JSON object")
}

// printRawPrompt prints a text prompt's string as-is and any other content
// shape as indented JSON.
func printRawPrompt(raw json.RawMessage) error {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		fmt.Println(text)
		return nil
	}
	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}
