// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package loader reads sampled files under a hard line cap and estimates the
// language mix of what was actually loaded.
package loader

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// DefaultMaxLines is the per-file line cap applied when none is configured.
const DefaultMaxLines = 200

// maxLineBytes bounds a single line; anything longer is treated as a read
// failure rather than letting one pathological file blow up memory.
const maxLineBytes = 1 << 20

// Load reads at most maxLines lines from absPath. Invalid byte sequences are
// replaced rather than failing the read. Reading stops at the cap even when
// the file is larger, which bounds memory and prompt size deterministically.
func Load(absPath string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for len(lines) < maxLines && scanner.Scan() {
		lines = append(lines, strings.ToValidUTF8(scanner.Text(), "�"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// LoadAll loads every selected candidate relative to root. A file that fails
// to read is kept in the result with its Err set instead of being dropped, so
// the sample size stays equal to the selection size.
func LoadAll(root string, selected []types.CandidateFile, maxLines int) []types.FileContent {
	out := make([]types.FileContent, 0, len(selected))

	for _, cand := range selected {
		content := types.FileContent{CandidateFile: cand}

		lines, err := Load(filepath.Join(root, filepath.FromSlash(cand.Path)), maxLines)
		if err != nil {
			content.Err = err.Error()
		} else {
			content.Lines = lines
		}

		out = append(out, content)
	}

	return out
}

// TotalLines sums the loaded (truncated) line counts across the sample.
func TotalLines(files []types.FileContent) int {
	total := 0
	for _, f := range files {
		total += len(f.Lines)
	}
	return total
}
