// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// The wrappers below are thin call-site adapters over Do and ListAll: they
// supply paths and filter names, nothing else. All aggregation behavior
// lives in ListAll; all classification in Do.

// TraceFilter narrows a trace listing. Zero values are omitted.
type TraceFilter struct {
	Name          string
	UserID        string
	SessionID     string
	Tags          []string
	FromTimestamp string
	ToTimestamp   string
}

func (f TraceFilter) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "name", f.Name)
	setNonEmpty(q, "userId", f.UserID)
	setNonEmpty(q, "sessionId", f.SessionID)
	setNonEmpty(q, "fromTimestamp", f.FromTimestamp)
	setNonEmpty(q, "toTimestamp", f.ToTimestamp)
	for _, tag := range f.Tags {
		q.Add("tags", tag)
	}
	return q
}

// ListTraces aggregates traces matching the filter, up to limit records.
func (c *Client) ListTraces(ctx context.Context, f TraceFilter, limit, page int) ([]Trace, error) {
	return ListAll[Trace](ctx, c, "/traces", f.values(), limit, page)
}

// GetTrace fetches a single trace by ID.
func (c *Client) GetTrace(ctx context.Context, id string) (Trace, error) {
	var t Trace
	err := c.Do(ctx, http.MethodGet, "/traces/"+url.PathEscape(id), nil, nil, &t)
	return t, err
}

// SessionFilter narrows a session listing.
type SessionFilter struct {
	FromTimestamp string
	ToTimestamp   string
}

func (f SessionFilter) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "fromTimestamp", f.FromTimestamp)
	setNonEmpty(q, "toTimestamp", f.ToTimestamp)
	return q
}

// ListSessions aggregates sessions matching the filter, up to limit records.
func (c *Client) ListSessions(ctx context.Context, f SessionFilter, limit, page int) ([]Session, error) {
	return ListAll[Session](ctx, c, "/sessions", f.values(), limit, page)
}

// GetSession fetches a single session by ID.
func (c *Client) GetSession(ctx context.Context, id string) (Session, error) {
	var s Session
	err := c.Do(ctx, http.MethodGet, "/sessions/"+url.PathEscape(id), nil, nil, &s)
	return s, err
}

// ObservationFilter narrows an observation listing.
type ObservationFilter struct {
	TraceID       string
	Name          string
	Type          string
	UserID        string
	FromStartTime string
	ToStartTime   string
}

func (f ObservationFilter) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "traceId", f.TraceID)
	setNonEmpty(q, "name", f.Name)
	setNonEmpty(q, "type", f.Type)
	setNonEmpty(q, "userId", f.UserID)
	setNonEmpty(q, "fromStartTime", f.FromStartTime)
	setNonEmpty(q, "toStartTime", f.ToStartTime)
	return q
}

// ListObservations aggregates observations matching the filter.
func (c *Client) ListObservations(ctx context.Context, f ObservationFilter, limit, page int) ([]Observation, error) {
	return ListAll[Observation](ctx, c, "/observations", f.values(), limit, page)
}

// GetObservation fetches a single observation by ID.
func (c *Client) GetObservation(ctx context.Context, id string) (Observation, error) {
	var o Observation
	err := c.Do(ctx, http.MethodGet, "/observations/"+url.PathEscape(id), nil, nil, &o)
	return o, err
}

// ScoreFilter narrows a score listing.
type ScoreFilter struct {
	Name          string
	FromTimestamp string
	ToTimestamp   string
}

func (f ScoreFilter) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "name", f.Name)
	setNonEmpty(q, "fromTimestamp", f.FromTimestamp)
	setNonEmpty(q, "toTimestamp", f.ToTimestamp)
	return q
}

// ListScores aggregates scores matching the filter.
func (c *Client) ListScores(ctx context.Context, f ScoreFilter, limit, page int) ([]Score, error) {
	return ListAll[Score](ctx, c, "/scores", f.values(), limit, page)
}

// GetScore fetches a single score by ID.
func (c *Client) GetScore(ctx context.Context, id string) (Score, error) {
	var s Score
	err := c.Do(ctx, http.MethodGet, "/scores/"+url.PathEscape(id), nil, nil, &s)
	return s, err
}

// CreateScore records a new score.
func (c *Client) CreateScore(ctx context.Context, req ScoreCreate) (Score, error) {
	var s Score
	err := c.Do(ctx, http.MethodPost, "/scores", nil, req, &s)
	return s, err
}

// QueryMetrics runs an aggregation query against the metrics endpoint.
func (c *Client) QueryMetrics(ctx context.Context, q MetricsQuery) (MetricsResult, error) {
	var r MetricsResult
	err := c.Do(ctx, http.MethodPost, "/metrics", nil, q, &r)
	return r, err
}

// PromptFilter narrows a prompt listing.
type PromptFilter struct {
	Name  string
	Label string
	Tag   string
}

func (f PromptFilter) values() url.Values {
	q := url.Values{}
	setNonEmpty(q, "name", f.Name)
	setNonEmpty(q, "label", f.Label)
	setNonEmpty(q, "tag", f.Tag)
	return q
}

// ListPrompts aggregates prompt metadata. Prompts live under the v2 API.
func (c *Client) ListPrompts(ctx context.Context, f PromptFilter, limit, page int) ([]PromptMeta, error) {
	return ListAll[PromptMeta](ctx, c, "/v2/prompts", f.values(), limit, page)
}

// GetPrompt fetches one prompt version by name. With version 0 and an empty
// label the API serves the production-labeled version.
func (c *Client) GetPrompt(ctx context.Context, name string, version int, label string) (Prompt, error) {
	q := url.Values{}
	if version > 0 {
		q.Set("version", strconv.Itoa(version))
	}
	setNonEmpty(q, "label", label)

	var p Prompt
	err := c.Do(ctx, http.MethodGet, "/v2/prompts/"+url.PathEscape(name), q, nil, &p)
	return p, err
}

// CreatePrompt creates a new prompt version (text or chat).
func (c *Client) CreatePrompt(ctx context.Context, req PromptCreate) (Prompt, error) {
	var p Prompt
	err := c.Do(ctx, http.MethodPost, "/v2/prompts", nil, req, &p)
	return p, err
}

// UpdatePromptLabels replaces the labels of one prompt version.
func (c *Client) UpdatePromptLabels(ctx context.Context, name string, version int, labels []string) (Prompt, error) {
	path := "/v2/prompts/" + url.PathEscape(name) + "/versions/" + strconv.Itoa(version)
	body := map[string][]string{"newLabels": labels}

	var p Prompt
	err := c.Do(ctx, http.MethodPatch, path, nil, body, &p)
	return p, err
}

// ListDatasets aggregates datasets. Datasets live under the v2 API.
func (c *Client) ListDatasets(ctx context.Context, limit, page int) ([]Dataset, error) {
	return ListAll[Dataset](ctx, c, "/v2/datasets", nil, limit, page)
}

// GetDataset fetches a dataset by name.
func (c *Client) GetDataset(ctx context.Context, name string) (Dataset, error) {
	var d Dataset
	err := c.Do(ctx, http.MethodGet, "/v2/datasets/"+url.PathEscape(name), nil, nil, &d)
	return d, err
}

// CreateDataset creates a new dataset.
func (c *Client) CreateDataset(ctx context.Context, req DatasetCreate) (Dataset, error) {
	var d Dataset
	err := c.Do(ctx, http.MethodPost, "/v2/datasets", nil, req, &d)
	return d, err
}

// ListDatasetItems aggregates dataset items, optionally scoped to one dataset.
func (c *Client) ListDatasetItems(ctx context.Context, datasetName string, limit, page int) ([]DatasetItem, error) {
	q := url.Values{}
	setNonEmpty(q, "datasetName", datasetName)
	return ListAll[DatasetItem](ctx, c, "/dataset-items", q, limit, page)
}

// GetDatasetItem fetches a dataset item by ID.
func (c *Client) GetDatasetItem(ctx context.Context, id string) (DatasetItem, error) {
	var d DatasetItem
	err := c.Do(ctx, http.MethodGet, "/dataset-items/"+url.PathEscape(id), nil, nil, &d)
	return d, err
}

// CreateDatasetItem adds an item to a dataset.
func (c *Client) CreateDatasetItem(ctx context.Context, req DatasetItemCreate) (DatasetItem, error) {
	var d DatasetItem
	err := c.Do(ctx, http.MethodPost, "/dataset-items", nil, req, &d)
	return d, err
}

// ListDatasetRuns aggregates the runs recorded against a dataset.
func (c *Client) ListDatasetRuns(ctx context.Context, datasetName string, limit, page int) ([]DatasetRun, error) {
	path := "/datasets/" + url.PathEscape(datasetName) + "/runs"
	return ListAll[DatasetRun](ctx, c, path, nil, limit, page)
}

// GetDatasetRun fetches one run of a dataset, including its run items.
func (c *Client) GetDatasetRun(ctx context.Context, datasetName, runName string) (DatasetRun, error) {
	path := "/datasets/" + url.PathEscape(datasetName) + "/runs/" + url.PathEscape(runName)

	var r DatasetRun
	err := c.Do(ctx, http.MethodGet, path, nil, nil, &r)
	return r, err
}

// TestConnection issues a minimal listing request to verify that the host is
// reachable and the credentials are accepted.
func (c *Client) TestConnection(ctx context.Context) error {
	q := url.Values{}
	q.Set("limit", "1")
	q.Set("page", "1")

	var page listPage[Trace]
	return c.Do(ctx, http.MethodGet, "/traces", q, nil, &page)
}

// setNonEmpty adds a query parameter only when the value is non-empty, so
// absent filters never appear on the wire.
func setNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
