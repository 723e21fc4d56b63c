// Copyright (c) 2026 Oracle Sentinel. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// BedrockConfig configures the AWS Bedrock backend.
type BedrockConfig struct {
	ModelID   string        // Bedrock model ID (required)
	Region    string        // AWS region (required)
	Profile   string        // AWS credential profile (optional)
	Timeout   time.Duration // Per-request timeout (default 120s)
	MaxTokens int           // Response token cap (default 16000)
}

// BedrockAPI abstracts the Bedrock Converse call for testing.
type BedrockAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// Bedrock is a reasoning backend on the AWS Bedrock Converse API.
type Bedrock struct {
	api       BedrockAPI
	modelID   string
	timeout   time.Duration
	maxTokens int
}

// NewBedrock creates a Bedrock backend using the standard AWS credential
// chain.
func NewBedrock(ctx context.Context, cfg BedrockConfig) (*Bedrock, error) {
	if cfg.ModelID == "" {
		return nil, fmt.Errorf("%w: model ID is required", ErrBackendFailure)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrBackendFailure)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %v", ErrBackendFailure, err)
	}

	return NewBedrockWithAPI(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

// NewBedrockWithAPI creates a backend with a pre-configured API
// implementation. Used for testing with mock clients.
func NewBedrockWithAPI(api BedrockAPI, cfg BedrockConfig) *Bedrock {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return &Bedrock{
		api:       api,
		modelID:   cfg.ModelID,
		timeout:   timeout,
		maxTokens: maxTokens,
	}
}

// Name identifies the backend and model in logs and diagnostics.
func (b *Bedrock) Name() string { return "bedrock:" + b.modelID }

// Analyze sends the prompt via Converse and returns the concatenated text
// blocks of the reply. Throttling errors are retried with backoff.
func (b *Bedrock) Analyze(ctx context.Context, prompt string) (string, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(b.modelID),
		Messages: []brtypes.Message{{
			Role: brtypes.ConversationRoleUser,
			Content: []brtypes.ContentBlock{
				&brtypes.ContentBlockMemberText{Value: prompt},
			},
		}},
		InferenceConfig: &brtypes.InferenceConfiguration{
			MaxTokens: aws.Int32(int32(b.maxTokens)),
		},
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

		callCtx, cancel := context.WithTimeout(ctx, b.timeout)
		output, err := b.api.Converse(callCtx, input)
		cancel()

		if err != nil {
			var throttle *brtypes.ThrottlingException
			if errors.As(err, &throttle) {
				lastErr = err
				continue
			}
			return "", b.classifyError(err)
		}

		return extractText(output)
	}

	return "", fmt.Errorf("%w: rate limited after %d retries: %v", ErrBackendFailure, maxRetryAttempts, lastErr)
}

// extractText pulls the text content blocks out of a Converse reply.
func extractText(output *bedrockruntime.ConverseOutput) (string, error) {
	msg, ok := output.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("%w: unexpected output type", ErrBackendFailure)
	}

	var text strings.Builder
	for _, block := range msg.Value.Content {
		if t, ok := block.(*brtypes.ContentBlockMemberText); ok {
			text.WriteString(t.Value)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrBackendFailure)
	}

	return text.String(), nil
}

// classifyError wraps Bedrock errors into ErrBackendFailure with descriptive
// messages.
func (b *Bedrock) classifyError(err error) error {
	var accessDenied *brtypes.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return fmt.Errorf("%w: credential or permission issue: %v", ErrBackendFailure, err)
	}

	var notFound *brtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: model not found: %s", ErrBackendFailure, b.modelID)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out after %s", ErrBackendFailure, b.timeout)
	}

	return fmt.Errorf("%w: %v", ErrBackendFailure, err)
}
