/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudechat implements llmchat.Chat over the Anthropic messages
// API.
package claudechat

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/llmchat"
)

// maxTokens bounds the completion; full-file rewrites can be long.
const maxTokens = 16384

// Chat is the Claude-backed implementation of llmchat.Chat.
type Chat struct {
	client anthropic.Client
}

// New creates a Chat authenticated with apiKey. Returns an error when the
// key is empty, before any request is made.
func New(apiKey string) (*Chat, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}
	return &Chat{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Complete implements llmchat.Chat.
func (c *Chat) Complete(ctx context.Context, req llmchat.Request) (llmchat.Completion, error) {
	log := clog.FromContext(ctx)
	log.With("model", req.Model).
		With("prompt_length", len(req.User)).
		Info("Requesting Claude completion")

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: req.System}},
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.User),
			},
		}},
	})
	if err != nil {
		return llmchat.Completion{}, fmt.Errorf("creating message: %w", err)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
		}
	}
	if text == "" {
		return llmchat.Completion{}, errors.New("no text content in Claude's response")
	}

	return llmchat.Completion{
		Text:             text,
		PromptTokens:     message.Usage.InputTokens,
		CompletionTokens: message.Usage.OutputTokens,
	}, nil
}
