// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sentinel defines the public interface for sentinel-code, an
// LLM-backed repository security and quality analyzer.
package sentinel

import (
	"context"
	"errors"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// Error types for the sentinel API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrBackendInit   = errors.New("backend initialization failed")
)

// Provider selects the reasoning backend.
type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderBedrock    Provider = "bedrock"
)

// Config configures an Analyzer instance. Zero values fall back to the
// defaults the hosted service runs with.
type Config struct {
	Provider Provider // Reasoning backend (default openrouter)
	Model    string   // Model identifier (required)
	APIKey   string   // OpenRouter API key (openrouter only)
	Region   string   // AWS region (bedrock only)

	MaxFiles int    // Sampling budget (default 30)
	MaxLines int    // Per-file line cap (default 200)
	TempDir  string // Checkout parent directory (default system temp)
}

// Analyzer analyzes remote repositories.
type Analyzer interface {
	// Analyze clones repoURL, samples it, and returns the assembled
	// report. The checkout is removed before Analyze returns.
	Analyze(ctx context.Context, repoURL string) (*types.Report, error)
}
