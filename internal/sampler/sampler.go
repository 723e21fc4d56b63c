// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// ErrRootInaccessible is returned when the repository root cannot be walked
// at all. Per-file stat failures are not fatal; they just drop the file.
var ErrRootInaccessible = errors.New("repository root inaccessible")

// Sampler discovers, filters, scores, and ranks candidate files under a
// repository root. A Sampler is safe for concurrent use on disjoint roots:
// it holds no mutable state after construction.
type Sampler struct {
	cfg    Config
	policy *Policy
	scorer *Scorer
	exts   map[string]bool
}

// New validates the configuration and builds a ready-to-use Sampler.
func New(cfg Config) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampler config: %w", err)
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		exts[strings.ToLower(e)] = true
	}

	return &Sampler{
		cfg:    cfg,
		policy: NewPolicy(cfg),
		scorer: NewScorer(cfg),
		exts:   exts,
	}, nil
}

// Sample runs one full selection pass over root:
//
//  1. Walk the tree collecting recognized extensions, then sort the paths
//     lexicographically so discovery order is stable across platforms.
//  2. Drop everything the skip policy rejects.
//  3. Score the survivors.
//  4. Stable-sort by score descending; ties keep discovery order.
//  5. Truncate to the MaxFiles budget.
//
// Tier counts cover the filtered set before truncation. An empty repository
// yields an empty result, not an error; the caller decides what that means.
func (s *Sampler) Sample(root string) (types.SamplingResult, error) {
	var result types.SamplingResult

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return result, fmt.Errorf("%w: %s", ErrRootInaccessible, root)
	}

	discovered, err := s.discover(root)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrRootInaccessible, err)
	}
	result.TotalDiscovered = len(discovered)

	var filtered []types.CandidateFile
	for _, cand := range discovered {
		if s.policy.Skip(cand.Path) {
			continue
		}
		cand.Score = s.scorer.Score(cand.Path, cand.SizeBytes)
		filtered = append(filtered, cand)
	}
	result.AfterFilter = len(filtered)
	result.Skipped = result.TotalDiscovered - result.AfterFilter

	for _, cand := range filtered {
		switch cand.Tier() {
		case "critical":
			result.Tiers.Critical++
		case "high":
			result.Tiers.High++
		case "medium":
			result.Tiers.Medium++
		default:
			result.Tiers.Low++
		}
	}

	// Stable sort is load-bearing here: discovery order is the only
	// tie-break, and it must survive the ranking pass.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if len(filtered) > s.cfg.MaxFiles {
		filtered = filtered[:s.cfg.MaxFiles]
	}
	result.Selected = filtered

	return result, nil
}

// discover walks the tree once and returns every file whose extension is
// recognized, sorted lexicographically by repo-relative path.
func (s *Sampler) discover(root string) ([]types.CandidateFile, error) {
	var found []types.CandidateFile

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil // Unreadable subtrees drop out silently.
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(p))
		if !s.exts[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}

		found = append(found, types.CandidateFile{
			Path:      filepath.ToSlash(rel),
			Extension: ext,
			SizeBytes: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Path < found[j].Path
	})

	return found, nil
}
