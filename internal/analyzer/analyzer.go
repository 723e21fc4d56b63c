// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer wires the sampling pipeline end to end: acquire, sample,
// load, estimate, prompt, analyze, assemble.
package analyzer

import (
	"context"
	"fmt"
	"log"

	"github.com/oraclesentinel/sentinel-code/internal/llm"
	"github.com/oraclesentinel/sentinel-code/internal/loader"
	"github.com/oraclesentinel/sentinel-code/internal/sampler"
	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// Placeholder bodies used when the pipeline cannot produce real analysis.
const (
	noFilesAnalysis  = "No source files found to analyze."
	degradedAnalysis = "Analysis unavailable: the reasoning backend did not return a result."
)

// Acquirer obtains and disposes of a local checkout for a repository URL.
type Acquirer interface {
	Acquire(ctx context.Context, repoURL string) (string, error)
	Release(path string)
}

// HeadResolver reports the HEAD commit of a checkout. Optional; a nil
// resolver just leaves the report's commit field empty.
type HeadResolver func(path string) (string, error)

// Deps holds injected dependencies for the runner.
type Deps struct {
	Acquirer Acquirer
	Backend  llm.Backend
	Sampler  *sampler.Sampler
	MaxLines int // Per-file line cap for loading (default loader.DefaultMaxLines)
	Head     HeadResolver
}

// Runner orchestrates one analysis request per Run call. It holds no mutable
// state, so a single Runner serves concurrent requests safely.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run analyzes the repository at repoURL and assembles the final report.
//
// Backend failure degrades the report to a placeholder body rather than
// failing the request; acquisition failure is the only fatal outcome. An
// empty repository produces a valid, empty-content report.
func (r *Runner) Run(ctx context.Context, repoURL string) (*types.Report, error) {
	path, err := r.deps.Acquirer.Acquire(ctx, repoURL)
	if err != nil {
		return nil, fmt.Errorf("acquiring %s: %w", repoURL, err)
	}
	defer r.deps.Acquirer.Release(path)

	report := &types.Report{Repo: repoURL}

	if r.deps.Head != nil {
		if commit, err := r.deps.Head(path); err == nil {
			report.Commit = commit
		}
	}

	sampled, err := r.deps.Sampler.Sample(path)
	if err != nil {
		return nil, fmt.Errorf("sampling %s: %w", repoURL, err)
	}
	report.Sampling = sampled

	if len(sampled.Selected) == 0 {
		report.Analysis = noFilesAnalysis
		return report, nil
	}

	files := loader.LoadAll(path, sampled.Selected, r.deps.MaxLines)
	report.FilesAnalyzed = len(files)
	report.TotalLines = loader.TotalLines(files)
	report.Languages = loader.EstimateMix(files)

	prompt, err := llm.RenderAnalysisPrompt(repoURL, files)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	analysis, err := r.deps.Backend.Analyze(ctx, prompt)
	if err != nil {
		log.Printf("backend %s failed for %s: %v", r.deps.Backend.Name(), repoURL, err)
		report.Analysis = degradedAnalysis
		report.Error = err.Error()
		return report, nil
	}
	report.Analysis = analysis

	return report, nil
}
