// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultOpenRouterURL is the OpenAI-compatible chat-completions endpoint.
const DefaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// errorBodyCap limits how much of an error response body ends up in logs.
const errorBodyCap = 2048

// OpenRouterConfig configures the OpenRouter backend.
type OpenRouterConfig struct {
	APIKey      string        // Bearer token (required)
	Model       string        // Model identifier (required)
	BaseURL     string        // Endpoint override, mainly for tests
	Timeout     time.Duration // Per-request timeout (default 120s)
	MaxTokens   int           // Response token cap (default 16000)
	Temperature float64       // Sampling temperature
}

// OpenRouter calls an OpenAI-compatible chat-completions API. Rate-limit
// responses are retried with exponential backoff; everything else fails fast.
type OpenRouter struct {
	http        *http.Client
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
}

// NewOpenRouter creates an OpenRouter backend from the given configuration.
func NewOpenRouter(cfg OpenRouterConfig) (*OpenRouter, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrBackendFailure)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenRouterURL
	}

	return &OpenRouter{
		http:        &http.Client{Timeout: timeout},
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     baseURL,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Name identifies the backend and model in logs and diagnostics.
func (o *OpenRouter) Name() string { return "openrouter:" + o.model }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the prompt as a single user message and returns the model's
// reply text.
func (o *OpenRouter) Analyze(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", ErrBackendFailure, err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay(attempt)):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: cancelled during retry: %v", ErrBackendFailure, ctx.Err())
			}
		}

		text, retryable, err := o.send(ctx, body)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("%w: rate limited after %d retries: %v", ErrBackendFailure, maxRetryAttempts, lastErr)
}

// send performs one request. The second return value reports whether the
// failure is retryable (rate limiting).
func (o *OpenRouter) send(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("%w: building request: %v", ErrBackendFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", true, fmt.Errorf("%w: rate limited (%s)", ErrBackendFailure, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyCap))
		return "", false, fmt.Errorf("%w: unexpected status %s: %s", ErrBackendFailure, resp.Status, snippet)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", false, fmt.Errorf("%w: decoding response: %v", ErrBackendFailure, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", false, fmt.Errorf("%w: empty completion", ErrBackendFailure)
	}

	return out.Choices[0].Message.Content, false, nil
}
