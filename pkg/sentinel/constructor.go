// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package sentinel

import (
	"context"
	"fmt"

	"github.com/oraclesentinel/sentinel-code/internal/analyzer"
	gitpkg "github.com/oraclesentinel/sentinel-code/internal/git"
	"github.com/oraclesentinel/sentinel-code/internal/llm"
	"github.com/oraclesentinel/sentinel-code/internal/loader"
	"github.com/oraclesentinel/sentinel-code/internal/sampler"
	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// New validates the config, initializes the sampling pipeline and the
// reasoning backend, and returns a ready-to-use Analyzer. Configuration
// errors surface here, at startup, never per-request.
func New(ctx context.Context, cfg Config) (Analyzer, error) {
	applyDefaults(&cfg)

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidConfig)
	}

	samplerCfg := sampler.DefaultConfig()
	samplerCfg.MaxFiles = cfg.MaxFiles
	smp, err := sampler.New(samplerCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	acquirer, err := gitpkg.NewAcquirer(gitpkg.Config{TempDir: cfg.TempDir})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	runner := analyzer.NewRunner(analyzer.Deps{
		Acquirer: acquirer,
		Backend:  backend,
		Sampler:  smp,
		MaxLines: cfg.MaxLines,
		Head:     gitpkg.HeadCommit,
	})

	return &analyzerAdapter{runner: runner}, nil
}

// newBackend builds the configured reasoning backend.
func newBackend(ctx context.Context, cfg Config) (llm.Backend, error) {
	switch cfg.Provider {
	case ProviderOpenRouter:
		backend, err := llm.NewOpenRouter(llm.OpenRouterConfig{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: 0.3,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
		}
		return backend, nil

	case ProviderBedrock:
		backend, err := llm.NewBedrock(ctx, llm.BedrockConfig{
			ModelID: cfg.Model,
			Region:  cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// analyzerAdapter adapts internal/analyzer.Runner to the public Analyzer
// interface.
type analyzerAdapter struct {
	runner *analyzer.Runner
}

func (a *analyzerAdapter) Analyze(ctx context.Context, repoURL string) (*types.Report, error) {
	return a.runner.Run(ctx, repoURL)
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenRouter
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = sampler.DefaultMaxFiles
	}
	if cfg.MaxLines == 0 {
		cfg.MaxLines = loader.DefaultMaxLines
	}
}
