// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRepoURL is returned for identifiers that are not GitHub
// repository URLs.
var ErrInvalidRepoURL = errors.New("invalid repository URL")

var githubURLPattern = regexp.MustCompile(`^https://github\.com/[\w.\-]+/[\w.\-]+/?$`)

// IsValidURL reports whether url is an https GitHub repository URL of the
// form https://github.com/owner/repo.
func IsValidURL(url string) bool {
	return githubURLPattern.MatchString(url)
}

// RepoInfo extracts the owner and repository name from a GitHub URL.
// Trailing slashes and a .git suffix are tolerated.
func RepoInfo(url string) (owner, name string, err error) {
	if !IsValidURL(url) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoURL, url)
	}

	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	parts := strings.Split(trimmed, "/")

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// Slug returns the owner_repo identifier used to key request-scoped
// checkout directories, so concurrent requests for different repositories
// never collide on disk.
func Slug(url string) (string, error) {
	owner, name, err := RepoInfo(url)
	if err != nil {
		return "", err
	}
	return owner + "_" + name, nil
}
