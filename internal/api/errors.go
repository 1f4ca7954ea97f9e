// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"errors"
	"fmt"
)

// Kind classifies the outcome of an API request into exactly one failure
// class. The set is closed; call sites switch over it exhaustively.
type Kind int

const (
	// KindConfigInvalid: client construction was attempted without credentials.
	KindConfigInvalid Kind = iota
	// KindAuthentication: the API rejected the credentials (401 or 403).
	KindAuthentication
	// KindNotFound: the requested resource does not exist (404).
	KindNotFound
	// KindRateLimited: the API throttled the request (429). No automatic
	// retry happens; callers decide whether to back off.
	KindRateLimited
	// KindTimeout: the connect or overall request timeout elapsed.
	KindTimeout
	// KindNetwork: any other transport-level failure (DNS, refused, reset).
	KindNetwork
	// KindDecode: the response body did not match the expected shape.
	KindDecode
	// KindAPI: any other non-2xx status. The fall-through class; no status
	// code is ever silently ignored.
	KindAPI
)

// String returns a short identifier for the kind, used in log output.
func (k Kind) String() string {
	switch k {
	case KindConfigInvalid:
		return "config_invalid"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindAPI:
		return "api"
	}
	return "unknown"
}

// Error is the single error type for all classified request outcomes.
// Message never contains credentials; it holds body text or a transport
// description only.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, when one was received
	Message string // body text or transport description
	Err     error  // wrapped cause, when one exists
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConfigInvalid:
		return "configuration is missing credentials"
	case KindAuthentication:
		return "authentication failed; check your public and secret keys"
	case KindNotFound:
		if e.Message != "" {
			return fmt.Sprintf("resource not found: %s", e.Message)
		}
		return "resource not found"
	case KindRateLimited:
		return "rate limit exceeded; please try again later"
	case KindTimeout:
		return "request timed out"
	case KindNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case KindDecode:
		return fmt.Sprintf("could not decode response: %s", e.Message)
	default:
		return fmt.Sprintf("API error: %d - %s", e.Status, e.Message)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
