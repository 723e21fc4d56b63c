// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git acquires and releases request-scoped repository checkouts.
package git

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// ErrCloneFailed is returned when the remote repository could not be
// shallow-cloned.
var ErrCloneFailed = errors.New("clone failed")

// DefaultCloneTimeout bounds a single clone operation.
const DefaultCloneTimeout = 60 * time.Second

// Config configures the acquirer.
type Config struct {
	TempDir string        // Parent directory for checkouts (default os.TempDir()/sentinel-code)
	Timeout time.Duration // Clone timeout (default 60s)
}

// Acquirer produces local checkouts of remote repositories. Checkouts are
// keyed by owner_repo slug; a stale checkout from an earlier request is
// removed before cloning.
type Acquirer struct {
	tempDir string
	timeout time.Duration
}

// NewAcquirer creates an Acquirer and ensures its temp directory exists.
func NewAcquirer(cfg Config) (*Acquirer, error) {
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "sentinel-code")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultCloneTimeout
	}

	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	return &Acquirer{tempDir: tempDir, timeout: timeout}, nil
}

// Acquire shallow-clones repoURL and returns the checkout path. The caller
// owns the checkout until it passes the path to Release.
func (a *Acquirer) Acquire(ctx context.Context, repoURL string) (string, error) {
	slug, err := Slug(repoURL)
	if err != nil {
		return "", err
	}

	path := filepath.Join(a.tempDir, slug)
	if err := os.RemoveAll(path); err != nil {
		return "", fmt.Errorf("%w: clearing %s: %v", ErrCloneFailed, path, err)
	}

	cloneCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	_, err = gogit.PlainCloneContext(cloneCtx, path, false, &gogit.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		SingleBranch: true,
		Tags:         gogit.NoTags,
	})
	if err != nil {
		os.RemoveAll(path)
		return "", fmt.Errorf("%w: %v", ErrCloneFailed, err)
	}

	return path, nil
}

// Release removes a checkout. Best-effort: failures are logged, never
// propagated.
func (a *Acquirer) Release(path string) {
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		log.Printf("release %s: %v", path, err)
	}
}

// HeadCommit returns the hash of the checkout's HEAD commit.
func HeadCommit(path string) (string, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening checkout: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
