// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitpkg "github.com/oraclesentinel/sentinel-code/internal/git"
	"github.com/oraclesentinel/sentinel-code/pkg/types"
)

// stubService counts calls and replies with a canned report or error.
type stubService struct {
	calls  int
	report *types.Report
	err    error
}

func (s *stubService) Analyze(ctx context.Context, repoURL string) (*types.Report, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

const repoURL = "https://github.com/oraclesentinel/demo"

func analyzeReq(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/code/analyze", strings.NewReader(body))
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler(&stubService{})
	rec := httptest.NewRecorder()

	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/code/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "sentinel-code", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestHandleAnalyze(t *testing.T) {
	svc := &stubService{report: &types.Report{Repo: repoURL, Analysis: "looks fine"}}
	h := NewHandler(svc)
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, repoURL, report.Repo)
	assert.Equal(t, "looks fine", report.Analysis)
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	h := NewHandler(&stubService{})
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, httptest.NewRequest(http.MethodGet, "/api/code/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAnalyze_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"repo_url":`},
		{"missing repo_url", `{}`},
		{"empty repo_url", `{"repo_url": ""}`},
		{"non-GitHub URL", `{"repo_url": "https://gitlab.com/user/repo"}`},
		{"plain http", `{"repo_url": "http://github.com/user/repo"}`},
	}

	svc := &stubService{}
	h := NewHandler(svc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleAnalyze(rec, analyzeReq(tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Zero(t, svc.calls)
}

func TestHandleAnalyze_ServiceError(t *testing.T) {
	h := NewHandler(&stubService{err: errors.New("clone failed")})
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleAnalyze_InvalidURLFromService(t *testing.T) {
	h := NewHandler(&stubService{err: gitpkg.ErrInvalidRepoURL})
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_CachesReports(t *testing.T) {
	svc := &stubService{report: &types.Report{Repo: repoURL}}
	h := NewHandler(svc)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.HandleAnalyze(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, svc.calls)
}

func TestHandleAnalyze_ErrorsAreNotCached(t *testing.T) {
	svc := &stubService{err: errors.New("clone failed")}
	h := NewHandler(svc)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.HandleAnalyze(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	}

	assert.Equal(t, 2, svc.calls)
}

func TestNewMux_Routes(t *testing.T) {
	mux := NewMux(NewHandler(&stubService{report: &types.Report{Repo: repoURL}}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/code/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, analyzeReq(`{"repo_url": "`+repoURL+`"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	mux := NewMux(NewHandler(&stubService{}))

	req := httptest.NewRequest(http.MethodOptions, "/api/code/analyze", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
