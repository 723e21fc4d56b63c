// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Report is the final analysis payload returned to the caller. Analysis is
// the reasoning backend's output verbatim; when the backend fails, Analysis
// holds a fixed placeholder and Error carries the reason.
type Report struct {
	Repo          string         `json:"repo"`
	Commit        string         `json:"commit,omitempty"`
	FilesAnalyzed int            `json:"files_analyzed"`
	TotalLines    int            `json:"total_lines"`
	Languages     LanguageMix    `json:"languages"`
	Sampling      SamplingResult `json:"sampling"`
	Analysis      string         `json:"analysis"`
	Error         string         `json:"error,omitempty"`
}
