// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

// package api implements the authenticated HTTP client for the Langfuse
// public API: request execution, response classification into a closed error
// taxonomy, and pagination aggregation for list-style resources. One client
// is constructed per command invocation and never mutated afterwards.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/toeirei/tracelens/internal/config"
	"github.com/toeirei/tracelens/internal/logging"
)

const (
	// basePath is the fixed API-version segment joined between the host and
	// every request path. Resource wrappers prepend "/v2" where a resource
	// lives under the second API version.
	basePath = "/api/public"

	// connectTimeout bounds TCP connection establishment; requestTimeout
	// bounds the whole request including the response body. Callers needing
	// different values construct a new client.
	connectTimeout = 10 * time.Second
	requestTimeout = 30 * time.Second

	// MaxPageSize is the largest page the API serves per request.
	MaxPageSize = 100
)

// Client issues authenticated requests against one resolved host. It owns a
// reusable transport with fixed timeouts.
type Client struct {
	host      string
	publicKey string
	secretKey string
	httpc     *http.Client
}

// New constructs a client from a resolved configuration. It fails with a
// KindConfigInvalid error when credentials are unresolved; no request is
// ever attempted with an invalid configuration.
func New(cfg config.EffectiveConfig) (*Client, error) {
	if !cfg.IsValid() {
		return nil, &Error{Kind: KindConfigInvalid}
	}

	return &Client{
		host:      strings.TrimRight(cfg.Host, "/"),
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		httpc: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}, nil
}

// Host returns the base URL the client was constructed with.
func (c *Client) Host() string {
	return c.host
}

// Do executes one authenticated request and classifies its outcome. The full
// URL is host + the fixed version segment + path; no other normalization is
// performed, so path segments built from user-supplied identifiers must be
// escaped by the caller. A non-nil body is sent as JSON. On success the
// response body is decoded into out (when out is non-nil); a mismatch is a
// KindDecode failure, never a silent default.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.host + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Message: "could not encode request body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	req.SetBasicAuth(c.publicKey, c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debugf("%s %s", method, u)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return classifyTransport(err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindDecode, Message: fmt.Sprintf("%s %s", method, path), Err: err}
		}
		return nil
	}

	return classifyStatus(resp)
}

// classifyStatus maps a non-2xx response to exactly one error kind. Unlisted
// statuses fall through to KindAPI with the status preserved.
func classifyStatus(resp *http.Response) error {
	text, _ := io.ReadAll(resp.Body)
	message := strings.TrimSpace(string(text))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindAuthentication, Status: resp.StatusCode}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: message}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: resp.StatusCode}
	default:
		return &Error{Kind: KindAPI, Status: resp.StatusCode, Message: message}
	}
}

// classifyTransport distinguishes timeouts from every other transport-level
// failure. The description never contains credentials; Basic Auth material
// does not appear in URLs.
func classifyTransport(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}
