// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// FileContent is a selected file together with its loaded lines. A failed
// read is represented explicitly: Err is set, Lines is empty, and the file
// still occupies its slot in the sample so the budget stays deterministic.
type FileContent struct {
	CandidateFile
	Lines []string // At most the loader's line cap; truncated, never summarized
	Err   string   // Non-empty when the read failed; Lines is then empty
}

// Failed reports whether the file's content could not be read.
func (f FileContent) Failed() bool {
	return f.Err != ""
}

// LanguageShare is one language's slice of the analyzed line count.
type LanguageShare struct {
	Language string `json:"language"`
	Percent  int    `json:"percent"`
}

// LanguageMix is the per-language share of analyzed source lines, ordered by
// percent descending. Percentages are rounded independently per language and
// are not renormalized, so the sum may drift slightly from 100.
type LanguageMix []LanguageShare
