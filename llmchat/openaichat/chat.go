/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaichat implements llmchat.Chat over the OpenAI
// chat-completions API. It works against any OpenAI-compatible endpoint;
// the default base URL points at openrouter so model identifiers like
// "openai/gpt-4o-mini" resolve.
package openaichat

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"chainguard.dev/refactoraf/llmchat"
)

// DefaultBaseURL is the OpenAI-compatible endpoint used when no override is
// configured.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Option configures a Chat.
type Option func(*Chat)

// WithBaseURL overrides the API base URL. Useful for talking to the OpenAI
// API directly, or to a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Chat) {
		c.baseURL = baseURL
	}
}

// Chat is the OpenAI-backed implementation of llmchat.Chat.
type Chat struct {
	client  openai.Client
	baseURL string
}

// New creates a Chat authenticated with apiKey. Returns an error when the
// key is empty, before any request is made.
func New(apiKey string, opts ...Option) (*Chat, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	c := &Chat{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}

	c.client = openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
	)
	return c, nil
}

// Complete implements llmchat.Chat.
func (c *Chat) Complete(ctx context.Context, req llmchat.Request) (llmchat.Completion, error) {
	log := clog.FromContext(ctx)
	log.With("model", req.Model).
		With("prompt_length", len(req.User)).
		Info("Requesting chat completion")

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	})
	if err != nil {
		return llmchat.Completion{}, fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return llmchat.Completion{}, errors.New("chat completion returned no choices")
	}

	return llmchat.Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
