// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionHandler returns a chat-completions response with the given text.
func completionHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": text}},
			},
		})
	}
}

func newTestClient(t *testing.T, url string) *OpenRouter {
	t.Helper()
	client, err := NewOpenRouter(OpenRouterConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: url,
	})
	require.NoError(t, err)
	return client
}

func TestOpenRouter_Analyze(t *testing.T) {
	var gotAuth atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		completionHandler("looks fine")(w, r)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	text, err := client.Analyze(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "looks fine", text)
	assert.Equal(t, "Bearer test-key", gotAuth.Load())
}

func TestOpenRouter_UnexpectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Analyze(context.Background(), "review this")
	assert.ErrorIs(t, err, ErrBackendFailure)
}

func TestOpenRouter_EmptyCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Analyze(context.Background(), "review this")
	assert.ErrorIs(t, err, ErrBackendFailure)
}

func TestOpenRouter_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		completionHandler("after retry")(w, r)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	text, err := client.Analyze(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "after retry", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenRouter_CancelledDuringRetry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, ts.URL)
	_, err := client.Analyze(ctx, "review this")
	assert.ErrorIs(t, err, ErrBackendFailure)
}

func TestNewOpenRouter_RequiresModel(t *testing.T) {
	_, err := NewOpenRouter(OpenRouterConfig{})
	assert.ErrorIs(t, err, ErrBackendFailure)
}

func TestOpenRouter_Name(t *testing.T) {
	client := newTestClient(t, "http://unused")
	assert.Equal(t, "openrouter:test-model", client.Name())
}
