// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sampler selects and ranks a bounded subset of repository files for
// analysis: discover by extension, drop noise, score by a weighted rule
// table, sort, truncate.
package sampler

import "fmt"

// Default budget and weight values.
const (
	DefaultMaxFiles = 30

	weightSecurity    = 100
	weightEntryPoint  = 50
	weightPriorityDir = 25
	weightSize        = 10
	weightDepth       = 15

	sizeBonusBytes      = 5 * 1024
	largeSizeBonusBytes = 10 * 1024
	shallowDepthMax     = 2
)

// Config carries every vocabulary and weight the sampler depends on. It is
// an explicit value passed at construction time, so tests and callers can
// override any of it without shared mutable state.
type Config struct {
	MaxFiles   int
	Extensions []string // Recognized extensions, with leading dot

	SkipDirs    []string // Directory segments that are never considered
	SkipMarkers []string // Filename/path substrings that are never considered

	SecurityTerms   []string // +weightSecurity when found in name or path
	EntryPointTerms []string // +weightEntryPoint when found in name without extension
	PriorityDirs    []string // +weightPriorityDir when present as a path segment
}

// DefaultConfig returns the stock sampling configuration.
func DefaultConfig() Config {
	return Config{
		MaxFiles: DefaultMaxFiles,
		Extensions: []string{
			".py", ".js", ".ts", ".jsx", ".tsx",
			".rs", ".sol", ".go", ".java",
			".cpp", ".c", ".h", ".hpp",
			".rb", ".php", ".swift", ".kt",
		},
		SkipDirs: []string{
			"node_modules", "vendor", "venv", ".venv", "__pycache__",
			".git", ".svn", "dist", "build", "target", ".next",
			"coverage", ".cache", ".tox",
		},
		SkipMarkers: []string{
			"test", "spec.", "mock", "fixture", "migration", ".min.",
		},
		SecurityTerms: []string{
			"auth", "login", "password", "passwd", "secret", "token",
			"session", "crypt", "oauth", "jwt", "credential",
			"payment", "billing", "wallet", "admin", "account", "user",
		},
		EntryPointTerms: []string{
			"main", "app", "index", "server", "config", "database", "db",
			"api", "route", "controller", "handler", "middleware",
			"service", "client", "util",
		},
		PriorityDirs: []string{
			"src", "lib", "api", "core", "app", "server",
			"services", "handlers", "controllers", "routes", "models",
		},
	}
}

// Validate rejects configurations that would make sampling degenerate. It is
// meant to run once at startup, not per request.
func (c Config) Validate() error {
	if c.MaxFiles <= 0 {
		return fmt.Errorf("max files must be positive, got %d", c.MaxFiles)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extension list is empty")
	}
	if len(c.SecurityTerms) == 0 || len(c.EntryPointTerms) == 0 {
		return fmt.Errorf("scoring vocabularies are empty")
	}
	return nil
}
