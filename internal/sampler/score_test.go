// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_SecurityTermDominates(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	// "login" in the name: +100 security, +15 depth (parent dir "auth").
	assert.Equal(t, 115, scorer.Score("auth/login.py", 2048))

	// Security term in the path also counts.
	assert.GreaterOrEqual(t, scorer.Score("payments/charge.py", 1024), weightSecurity)
}

func TestScorer_EntryPointAndLocation(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	tests := []struct {
		path string
		size int64
		want int
	}{
		// +50 entry point, +15 depth.
		{"server.py", 1024, 65},
		// +50 entry point, +25 priority dir, +15 depth.
		{"src/handler.go", 1024, 90},
		// +25 priority dir, +15 depth, neutral name.
		{"src/zz.py", 1024, 40},
		// Neutral everything except depth.
		{"zz.py", 1024, 15},
		// Too deep for the depth bonus, nothing else triggers.
		{"a/b/c/d/zz.py", 1024, 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.path, tt.size))
		})
	}
}

func TestScorer_SizeBonusesStack(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	// The deep neutral path isolates the size signal.
	base := "a/b/c/d/zz.py"
	assert.Equal(t, 0, scorer.Score(base, 4*1024))
	assert.Equal(t, 10, scorer.Score(base, 6*1024))
	assert.Equal(t, 20, scorer.Score(base, 12*1024))
}

func TestScorer_DepthBoundary(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	// Parent dir separator counts of 0, 1, 2 qualify; 3 does not.
	assert.Equal(t, 15, scorer.Score("zz.py", 0))
	assert.Equal(t, 15, scorer.Score("a/zz.py", 0))
	assert.Equal(t, 15, scorer.Score("a/b/c/zz.py", 0))
	assert.Equal(t, 0, scorer.Score("a/b/c/d/zz.py", 0))
}

func TestScorer_MonotonicOnSecurityKeyword(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	plain := scorer.Score("a/b/c/d/handler.py", 1024)
	flagged := scorer.Score("a/b/c/d/auth_handler.py", 1024)

	assert.GreaterOrEqual(t, flagged, plain)
	assert.Equal(t, plain+weightSecurity, flagged)
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	for range 10 {
		assert.Equal(t, scorer.Score("src/auth/token.py", 8192), scorer.Score("src/auth/token.py", 8192))
	}
}

func TestScorer_CaseInsensitive(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	assert.Equal(t, scorer.Score("auth/login.py", 2048), scorer.Score("AUTH/Login.PY", 2048))
}
