// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package sampler

import (
	"path"
	"strings"
)

// Policy is the absolute exclusion predicate applied before scoring. A match
// is final: skipped files never receive a score, regardless of how strongly
// the scorer would have rated them.
type Policy struct {
	dirs    []string
	markers []string
}

// NewPolicy builds a skip policy from the configured denylists. Entries are
// lower-cased once here so Skip itself stays allocation-light.
func NewPolicy(cfg Config) *Policy {
	p := &Policy{
		dirs:    make([]string, len(cfg.SkipDirs)),
		markers: make([]string, len(cfg.SkipMarkers)),
	}
	for i, d := range cfg.SkipDirs {
		p.dirs[i] = strings.ToLower(d)
	}
	for i, m := range cfg.SkipMarkers {
		p.markers[i] = strings.ToLower(m)
	}
	return p
}

// Skip reports whether the file at relPath must never be considered. It is
// pure: the decision depends only on the lower-cased path text.
func (p *Policy) Skip(relPath string) bool {
	lower := strings.ToLower(strings.ReplaceAll(relPath, "\\", "/"))

	for _, seg := range strings.Split(path.Dir(lower), "/") {
		for _, d := range p.dirs {
			if seg == d {
				return true
			}
		}
	}

	// Markers match anywhere in the path, which covers the bare filename too.
	for _, m := range p.markers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	return false
}
