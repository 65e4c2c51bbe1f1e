/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package llmchat defines the single-turn chat contract shared by the model
// backends. The refactoring workflow only ever needs one completion per
// prompt, so the surface is deliberately a single method; per-vendor
// packages (openaichat, claudechat, geminichat) adapt their SDKs to it.
package llmchat

import "context"

// Request is a single chat-completion request: a system role, one user
// message, and the model identifier to run it against.
type Request struct {
	System string
	User   string
	Model  string
}

// Completion is the model's reply plus the token usage reported for the
// exchange. Usage is zero when the backend does not report it.
type Completion struct {
	Text             string
	PromptTokens     int64
	CompletionTokens int64
}

// Chat issues a single completion request and returns the reply.
type Chat interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}
