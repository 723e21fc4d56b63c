// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package sampler

import (
	"path"
	"strings"
)

// fileFacts is the scorer's view of a candidate: derived once per file, then
// handed to every rule.
type fileFacts struct {
	lowerPath string // Repo-relative, slash-separated, lower-cased
	stem      string // Filename without extension, lower-cased
	segments  []string
	sizeBytes int64
	depth     int // Separator count in the parent directory path
}

// rule is one independently triggerable scoring signal. Rules never exclude;
// they only add weight.
type rule struct {
	name   string
	weight int
	match  func(f fileFacts) bool
}

// Scorer computes a file's priority score as the sum of every matching rule.
// It is pure and deterministic: same path and size always produce the same
// score.
type Scorer struct {
	rules []rule
}

// NewScorer builds the weighted rule table from the configured vocabularies.
// Weights are ordered by vocabulary specificity: security terms outrank
// entry-point terms, which outrank location, size, and depth signals.
func NewScorer(cfg Config) *Scorer {
	security := lowerAll(cfg.SecurityTerms)
	entry := lowerAll(cfg.EntryPointTerms)
	prioDirs := lowerAll(cfg.PriorityDirs)

	return &Scorer{rules: []rule{
		{
			name:   "security-term",
			weight: weightSecurity,
			match: func(f fileFacts) bool {
				return containsAny(f.stem, security) || containsAny(f.lowerPath, security)
			},
		},
		{
			name:   "entry-point",
			weight: weightEntryPoint,
			match: func(f fileFacts) bool {
				return containsAny(f.stem, entry)
			},
		},
		{
			name:   "priority-dir",
			weight: weightPriorityDir,
			match: func(f fileFacts) bool {
				for _, seg := range f.segments {
					for _, d := range prioDirs {
						if seg == d {
							return true
						}
					}
				}
				return false
			},
		},
		{
			name:   "size-over-5k",
			weight: weightSize,
			match: func(f fileFacts) bool {
				return f.sizeBytes > sizeBonusBytes
			},
		},
		{
			name:   "size-over-10k",
			weight: weightSize,
			match: func(f fileFacts) bool {
				return f.sizeBytes > largeSizeBonusBytes
			},
		},
		{
			name:   "root-proximate",
			weight: weightDepth,
			match: func(f fileFacts) bool {
				return f.depth <= shallowDepthMax
			},
		},
	}}
}

// Score computes the priority score for a repo-relative path and its size at
// discovery time. Scores are additive across rules, minimum 0, unbounded
// above.
func (s *Scorer) Score(relPath string, sizeBytes int64) int {
	f := newFileFacts(relPath, sizeBytes)

	total := 0
	for _, r := range s.rules {
		if r.match(f) {
			total += r.weight
		}
	}
	return total
}

func newFileFacts(relPath string, sizeBytes int64) fileFacts {
	lower := strings.ToLower(strings.ReplaceAll(relPath, "\\", "/"))
	base := path.Base(lower)
	stem := strings.TrimSuffix(base, path.Ext(base))

	dir := path.Dir(lower)
	depth := 0
	var segments []string
	if dir != "." {
		segments = strings.Split(dir, "/")
		depth = strings.Count(dir, "/")
	}

	return fileFacts{
		lowerPath: lower,
		stem:      stem,
		segments:  segments,
		sizeBytes: sizeBytes,
		depth:     depth,
	}
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
