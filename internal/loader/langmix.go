// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package loader

import (
	"math"
	"sort"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// extLanguages maps recognized extensions to display labels. Extensions not
// listed here fall back to the raw extension string.
var extLanguages = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".jsx":   "React JSX",
	".tsx":   "React TSX",
	".rs":    "Rust",
	".sol":   "Solidity",
	".go":    "Go",
	".java":  "Java",
	".cpp":   "C++",
	".c":     "C",
	".h":     "C Header",
	".hpp":   "C++ Header",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
}

// LanguageLabel returns the display label for a file extension.
func LanguageLabel(ext string) string {
	if label, ok := extLanguages[ext]; ok {
		return label
	}
	return ext
}

// EstimateMix computes the per-language share of the loaded sample. Counts
// come from the truncated line totals, not true file lengths. Percentages are
// rounded independently per language, so they need not sum to exactly 100.
// The result is ordered by percent descending, then label ascending.
func EstimateMix(files []types.FileContent) types.LanguageMix {
	byLabel := make(map[string]int)
	total := 0

	for _, f := range files {
		if f.Failed() {
			continue
		}
		byLabel[LanguageLabel(f.Extension)] += len(f.Lines)
		total += len(f.Lines)
	}

	if total == 0 {
		return nil
	}

	mix := make(types.LanguageMix, 0, len(byLabel))
	for label, lines := range byLabel {
		mix = append(mix, types.LanguageShare{
			Language: label,
			Percent:  int(math.Round(float64(lines) / float64(total) * 100)),
		})
	}

	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Percent != mix[j].Percent {
			return mix[i].Percent > mix[j].Percent
		}
		return mix[i].Language < mix[j].Language
	})

	return mix
}
