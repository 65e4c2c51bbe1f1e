/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package refactor runs the two-prompt LLM round over a selected file:
// one completion to report design smells, a second to produce a full-file
// rewrite using the smell report as context.
package refactor

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/llmchat"
	"chainguard.dev/refactoraf/metrics"
	"chainguard.dev/refactoraf/promptbuilder"
	"chainguard.dev/refactoraf/repoaccess"
)

// FileFetcher retrieves a file's decoded content at a ref. Satisfied by
// *repoaccess.Client.
type FileFetcher interface {
	File(ctx context.Context, repo *repoaccess.Repository, path, ref string) (*repoaccess.FileContent, error)
}

// Refactoring is the outcome of one file's two-prompt round.
type Refactoring struct {
	Path string

	// Smells is the model's free-text design-smell report. It is not
	// parsed further; it feeds the rewrite prompt and the PR body.
	Smells string

	// Content is the full-file replacement, used verbatim apart from
	// stripping a wrapping markdown fence.
	Content string
}

// Requester issues the prompts for each selected file. There is no retry
// and no rate-limit handling; the first failure propagates.
type Requester struct {
	chat  llmchat.Chat
	files FileFetcher
	model string
	genai *metrics.GenAI
}

// NewRequester creates a Requester running model over chat.
func NewRequester(chat llmchat.Chat, files FileFetcher, model string) *Requester {
	return &Requester{
		chat:  chat,
		files: files,
		model: model,
		genai: metrics.NewGenAI("refactoraf.llm"),
	}
}

// RefactorFile fetches path at ref and runs the smell and rewrite prompts
// against it.
func (r *Requester) RefactorFile(ctx context.Context, repo *repoaccess.Repository, path, ref string) (*Refactoring, error) {
	log := clog.FromContext(ctx)
	log.With("path", path).Info("Processing file")

	file, err := r.files.File(ctx, repo, path, ref)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	smells, err := r.complete(ctx, smellFinderRole, "smells", smellPrompt, map[string]any{
		"code": codePayload{Content: file.Content},
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	rewrite, err := r.complete(ctx, refactorerRole, "rewrite", rewritePrompt, map[string]any{
		"smells": smellsPayload{Content: smells},
		"code":   codePayload{Content: file.Content},
	})
	if err != nil {
		return nil, fmt.Errorf("rewriting %s: %w", path, err)
	}

	return &Refactoring{
		Path:    path,
		Smells:  smells,
		Content: ExtractCode(rewrite),
	}, nil
}

// complete binds the XML payloads into tmpl, sends the completion, and
// records token usage.
func (r *Requester) complete(ctx context.Context, role, purpose string, tmpl *promptbuilder.Prompt, payloads map[string]any) (string, error) {
	bound := tmpl
	var err error
	for name, payload := range payloads {
		if bound, err = bound.BindXML(name, payload); err != nil {
			return "", fmt.Errorf("binding %s prompt: %w", purpose, err)
		}
	}

	user, err := bound.Build()
	if err != nil {
		return "", fmt.Errorf("building %s prompt: %w", purpose, err)
	}

	completion, err := r.chat.Complete(ctx, llmchat.Request{
		System: systemInstructions,
		User:   role + ": " + user,
		Model:  r.model,
	})
	if err != nil {
		return "", err
	}

	r.genai.RecordCompletion(ctx, r.model, purpose, completion.PromptTokens, completion.CompletionTokens)
	return completion.Text, nil
}
