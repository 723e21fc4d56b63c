// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

func contentFile(path string, lines ...string) types.FileContent {
	return types.FileContent{
		CandidateFile: types.CandidateFile{Path: path},
		Lines:         lines,
	}
}

func TestRenderAnalysisPrompt(t *testing.T) {
	files := []types.FileContent{
		contentFile("src/auth/login.py", "def login():", "    pass"),
		contentFile("main.go", "package main"),
	}

	prompt, err := RenderAnalysisPrompt("https://github.com/oraclesentinel/demo", files)
	require.NoError(t, err)

	assert.Contains(t, prompt, "https://github.com/oraclesentinel/demo")
	assert.Contains(t, prompt, "=== FILE: src/auth/login.py ===")
	assert.Contains(t, prompt, "def login():\n    pass")
	assert.Contains(t, prompt, "=== FILE: main.go ===")
	assert.Contains(t, prompt, "package main")
}

func TestRenderAnalysisPrompt_UnreadableFile(t *testing.T) {
	files := []types.FileContent{
		{
			CandidateFile: types.CandidateFile{Path: "broken.py"},
			Err:           "permission denied",
		},
	}

	prompt, err := RenderAnalysisPrompt("https://github.com/oraclesentinel/demo", files)
	require.NoError(t, err)

	assert.Contains(t, prompt, "=== FILE: broken.py ===")
	assert.Contains(t, prompt, "[unreadable: permission denied]")
}

func TestRenderAnalysisPrompt_NoFiles(t *testing.T) {
	prompt, err := RenderAnalysisPrompt("https://github.com/oraclesentinel/demo", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "https://github.com/oraclesentinel/demo")
}
