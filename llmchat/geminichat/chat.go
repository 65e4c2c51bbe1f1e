/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package geminichat implements llmchat.Chat over the Gemini API.
package geminichat

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"chainguard.dev/refactoraf/llmchat"
)

// Chat is the Gemini-backed implementation of llmchat.Chat.
type Chat struct {
	client *genai.Client
}

// New creates a Chat authenticated with apiKey. Returns an error when the
// key is empty, before any request is made.
func New(ctx context.Context, apiKey string) (*Chat, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &Chat{client: client}, nil
}

// Complete implements llmchat.Chat.
func (c *Chat) Complete(ctx context.Context, req llmchat.Request) (llmchat.Completion, error) {
	log := clog.FromContext(ctx)
	log.With("model", req.Model).
		With("prompt_length", len(req.User)).
		Info("Requesting Gemini completion")

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.User}},
	}}

	response, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return llmchat.Completion{}, fmt.Errorf("generating content: %w", err)
	}

	text := response.Text()
	if text == "" {
		return llmchat.Completion{}, errors.New("no text content in Gemini's response")
	}

	completion := llmchat.Completion{Text: text}
	if response.UsageMetadata != nil {
		completion.PromptTokens = int64(response.UsageMetadata.PromptTokenCount)
		completion.CompletionTokens = int64(response.UsageMetadata.CandidatesTokenCount)
	}
	return completion, nil
}
