// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// promptData holds the values injected into the analysis prompt template.
type promptData struct {
	RepoURL      string
	FilesContent string
}

// RenderAnalysisPrompt renders the full analysis prompt for the sampled
// files. Unreadable files appear with a single diagnostic line so the model
// sees the gap instead of silently missing content.
func RenderAnalysisPrompt(repoURL string, files []types.FileContent) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/analysis.tmpl")
	if err != nil {
		return "", fmt.Errorf("parsing analysis template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, promptData{
		RepoURL:      repoURL,
		FilesContent: formatFiles(files),
	})
	if err != nil {
		return "", fmt.Errorf("executing analysis template: %w", err)
	}

	return buf.String(), nil
}

// formatFiles concatenates the sampled files with path headers.
func formatFiles(files []types.FileContent) string {
	var buf strings.Builder

	for _, f := range files {
		fmt.Fprintf(&buf, "\n\n=== FILE: %s ===\n", f.Path)
		if f.Failed() {
			fmt.Fprintf(&buf, "[unreadable: %s]", f.Err)
			continue
		}
		buf.WriteString(strings.Join(f.Lines, "\n"))
	}

	return buf.String()
}
