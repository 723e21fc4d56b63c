// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	gitpkg "github.com/oraclesentinel/sentinel-code/internal/git"
	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

const (
	serviceName    = "sentinel-code"
	serviceVersion = "1.0.0"

	defaultCacheSize = 64
	defaultCacheTTL  = 15 * time.Minute
)

// Service runs one repository analysis. Implemented by the sentinel
// facade; abstracted here so handler tests can stub the pipeline.
type Service interface {
	Analyze(ctx context.Context, repoURL string) (*types.Report, error)
}

// Handler serves the analyze and health endpoints. Completed reports are
// cached per repository URL for a short window, so repeated submissions of
// the same repository do not re-clone and re-analyze it.
type Handler struct {
	svc   Service
	cache *expirable.LRU[string, *types.Report]
}

// NewHandler creates a Handler around the given analysis service.
func NewHandler(svc Service) *Handler {
	return &Handler{
		svc:   svc,
		cache: expirable.NewLRU[string, *types.Report](defaultCacheSize, nil, defaultCacheTTL),
	}
}

type analyzeRequest struct {
	RepoURL string `json:"repo_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// HandleAnalyze accepts {"repo_url": ...}, runs the pipeline, and returns
// the report. Invalid identifiers are 4xx; acquisition and pipeline failures
// are 5xx.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RepoURL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "repo_url is required"})
		return
	}

	if !gitpkg.IsValidURL(req.RepoURL) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid GitHub URL"})
		return
	}

	if report, ok := h.cache.Get(req.RepoURL); ok {
		writeJSON(w, http.StatusOK, report)
		return
	}

	report, err := h.svc.Analyze(r.Context(), req.RepoURL)
	if err != nil {
		log.Printf("analyze %s: %v", req.RepoURL, err)
		status := http.StatusInternalServerError
		if errors.Is(err, gitpkg.ErrInvalidRepoURL) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: "failed to analyze repository"})
		return
	}

	h.cache.Add(req.RepoURL, report)
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
