// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import "encoding/json"

// The record shapes below are plain data-transfer types mirroring the API's
// JSON. Optional fields carry omitempty so rendered output stays compact.

// Trace is a single trace record.
type Trace struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	SessionID    string        `json:"sessionId,omitempty"`
	Release      string        `json:"release,omitempty"`
	Version      string        `json:"version,omitempty"`
	Metadata     any           `json:"metadata,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Input        any           `json:"input,omitempty"`
	Output       any           `json:"output,omitempty"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Observations []Observation `json:"observations,omitempty"`
}

// Session groups traces recorded under one session identifier.
type Session struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt,omitempty"`
	ProjectID string  `json:"projectId,omitempty"`
	Traces    []Trace `json:"traces,omitempty"`
}

// Observation is a span, event or generation inside a trace.
type Observation struct {
	ID                  string `json:"id"`
	TraceID             string `json:"traceId,omitempty"`
	Type                string `json:"type,omitempty"`
	Name                string `json:"name,omitempty"`
	StartTime           string `json:"startTime,omitempty"`
	EndTime             string `json:"endTime,omitempty"`
	Model               string `json:"model,omitempty"`
	ModelParameters     any    `json:"modelParameters,omitempty"`
	Input               any    `json:"input,omitempty"`
	Output              any    `json:"output,omitempty"`
	Metadata            any    `json:"metadata,omitempty"`
	Usage               *Usage `json:"usage,omitempty"`
	Level               string `json:"level,omitempty"`
	StatusMessage       string `json:"statusMessage,omitempty"`
	ParentObservationID string `json:"parentObservationId,omitempty"`
	CompletionStartTime string `json:"completionStartTime,omitempty"`
}

// Usage holds token counts and costs for an observation.
type Usage struct {
	Input      *int64   `json:"input,omitempty"`
	Output     *int64   `json:"output,omitempty"`
	Total      *int64   `json:"total,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	InputCost  *float64 `json:"inputCost,omitempty"`
	OutputCost *float64 `json:"outputCost,omitempty"`
	TotalCost  *float64 `json:"totalCost,omitempty"`
}

// Score is an evaluation value attached to a trace or observation.
type Score struct {
	ID            string `json:"id"`
	TraceID       string `json:"traceId,omitempty"`
	ObservationID string `json:"observationId,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	Name          string `json:"name,omitempty"`
	Value         any    `json:"value,omitempty"`
	Source        string `json:"source,omitempty"`
	Comment       string `json:"comment,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	DataType      string `json:"dataType,omitempty"`
	StringValue   string `json:"stringValue,omitempty"`
}

// ScoreCreate is the request body for creating a score.
type ScoreCreate struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	TraceID       string  `json:"traceId,omitempty"`
	ObservationID string  `json:"observationId,omitempty"`
	SessionID     string  `json:"sessionId,omitempty"`
	DataType      string  `json:"dataType,omitempty"`
	Comment       string  `json:"comment,omitempty"`
}

// MetricsQuery is the request body for the metrics endpoint. Dimensions are
// sent as objects with a single "field" key, as the API expects.
type MetricsQuery struct {
	View          string            `json:"view"`
	Measure       string            `json:"measure"`
	Aggregation   string            `json:"aggregation"`
	Dimensions    []MetricDimension `json:"dimensions,omitempty"`
	FromTimestamp string            `json:"fromTimestamp,omitempty"`
	ToTimestamp   string            `json:"toTimestamp,omitempty"`
	Granularity   string            `json:"granularity,omitempty"`
	Limit         int               `json:"limit,omitempty"`
}

// MetricDimension names one grouping field of a metrics query.
type MetricDimension struct {
	Field string `json:"field"`
}

// MetricsResult is the generic row set a metrics query returns.
type MetricsResult struct {
	Data []map[string]any `json:"data"`
}

// PromptMeta is the listing shape for prompts: name plus version and label
// inventory, without the prompt content itself.
type PromptMeta struct {
	Name          string   `json:"name"`
	Versions      []int    `json:"versions,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	LastUpdatedAt string   `json:"lastUpdatedAt,omitempty"`
}

// ChatMessage is one message of a chat prompt.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt is a full prompt version. Prompt holds either a JSON string (text
// prompts) or an array of chat messages; it is kept raw so either shape
// round-trips unchanged.
type Prompt struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	Version       int             `json:"version,omitempty"`
	Type          string          `json:"type,omitempty"`
	Prompt        json.RawMessage `json:"prompt,omitempty"`
	Config        any             `json:"config,omitempty"`
	Labels        []string        `json:"labels,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CommitMessage string          `json:"commitMessage,omitempty"`
}

// PromptCreate is the request body for creating a prompt version. For text
// prompts Prompt is a JSON string; for chat prompts it is a message array.
type PromptCreate struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Prompt        json.RawMessage `json:"prompt"`
	Config        any             `json:"config,omitempty"`
	Labels        []string        `json:"labels,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CommitMessage string          `json:"commitMessage,omitempty"`
}

// Dataset is a named collection of evaluation items.
type Dataset struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Metadata    any    `json:"metadata,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// DatasetCreate is the request body for creating a dataset.
type DatasetCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Metadata    any    `json:"metadata,omitempty"`
}

// DatasetItem is one input/expected-output pair of a dataset.
type DatasetItem struct {
	ID                  string `json:"id"`
	DatasetID           string `json:"datasetId,omitempty"`
	DatasetName         string `json:"datasetName,omitempty"`
	Input               any    `json:"input,omitempty"`
	ExpectedOutput      any    `json:"expectedOutput,omitempty"`
	Metadata            any    `json:"metadata,omitempty"`
	SourceTraceID       string `json:"sourceTraceId,omitempty"`
	SourceObservationID string `json:"sourceObservationId,omitempty"`
	Status              string `json:"status,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// DatasetItemCreate is the request body for creating a dataset item.
type DatasetItemCreate struct {
	DatasetName    string `json:"datasetName"`
	Input          any    `json:"input"`
	ExpectedOutput any    `json:"expectedOutput,omitempty"`
	Metadata       any    `json:"metadata,omitempty"`
}

// DatasetRun is one evaluation run recorded against a dataset.
type DatasetRun struct {
	ID              string           `json:"id,omitempty"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Metadata        any              `json:"metadata,omitempty"`
	DatasetID       string           `json:"datasetId,omitempty"`
	DatasetName     string           `json:"datasetName,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
	DatasetRunItems []DatasetRunItem `json:"datasetRunItems,omitempty"`
}

// DatasetRunItem links a run to the trace produced for one dataset item.
type DatasetRunItem struct {
	ID            string `json:"id"`
	DatasetRunID  string `json:"datasetRunId,omitempty"`
	DatasetItemID string `json:"datasetItemId,omitempty"`
	TraceID       string `json:"traceId,omitempty"`
	ObservationID string `json:"observationId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}
