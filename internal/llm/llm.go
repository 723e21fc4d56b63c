// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package llm provides the reasoning backends that turn an assembled prompt
// into an analysis report body.
package llm

import (
	"context"
	"errors"
	"time"
)

const (
	defaultTimeout   = 120 * time.Second
	defaultMaxTokens = 16000
	maxRetryAttempts = 3
	baseRetryDelay   = 1 * time.Second
)

// ErrBackendFailure indicates the reasoning backend call failed (network,
// auth, rate limit, malformed response). Callers degrade to a placeholder
// report body; they never retry beyond what the backend itself does.
var ErrBackendFailure = errors.New("analysis backend failure")

// Backend is a reasoning service: it takes the assembled prompt and returns
// the analysis text. Implementations own their timeout and rate-limit retry.
type Backend interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Name() string
}

// retryDelay returns the exponential backoff delay before retry attempt n
// (1-based).
func retryDelay(attempt int) time.Duration {
	return baseRetryDelay << (attempt - 1)
}
