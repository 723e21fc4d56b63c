// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package server

import "net/http"

// NewMux registers the API routes and wraps them with CORS.
func NewMux(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/code/health", h.HandleHealth)
	mux.HandleFunc("/api/code/analyze", h.HandleAnalyze)

	return cors(mux)
}
