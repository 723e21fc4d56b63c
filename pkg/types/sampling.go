// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across sentinel-code packages.
package types

// Priority tier thresholds. Tiers are observational: they describe the
// filtered candidate set and never influence selection.
const (
	TierCritical = 100
	TierHigh     = 50
	TierMedium   = 25
)

// CandidateFile is a source file discovered during sampling. It is immutable
// once scored: the path, extension, and size are captured at discovery time
// and never re-read.
type CandidateFile struct {
	Path      string `json:"path"`       // Repo-relative, slash-separated
	Extension string `json:"extension"`  // Includes the leading dot
	SizeBytes int64  `json:"size_bytes"` // Size at discovery time
	Score     int    `json:"score"`      // Priority score, >= 0, no upper bound
}

// Tier returns the priority tier name for the file's score.
func (c CandidateFile) Tier() string {
	switch {
	case c.Score >= TierCritical:
		return "critical"
	case c.Score >= TierHigh:
		return "high"
	case c.Score >= TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// TierCounts breaks the filtered candidate set down by priority tier.
type TierCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// SamplingResult holds the ranked selection and the counts observed while
// producing it. Selected is sorted by score descending; ties keep discovery
// order, which is lexicographic by path.
type SamplingResult struct {
	Selected        []CandidateFile `json:"-"`
	TotalDiscovered int             `json:"total_discovered"`
	Skipped         int             `json:"skipped"`
	AfterFilter     int             `json:"after_filter"`
	Tiers           TierCounts      `json:"tiers"`
}
