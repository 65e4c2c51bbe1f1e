/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs one refactoring pass over a GitHub repository: it picks
// a handful of source files, asks an LLM for a design-smell report and a
// full-file rewrite of each, pushes the rewrites on a fresh branch, and
// opens a pull request carrying the reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/refactoraf/llmchat"
	"chainguard.dev/refactoraf/llmchat/claudechat"
	"chainguard.dev/refactoraf/llmchat/geminichat"
	"chainguard.dev/refactoraf/llmchat/openaichat"
	"chainguard.dev/refactoraf/pipeline"
	"chainguard.dev/refactoraf/publisher"
	"chainguard.dev/refactoraf/refactor"
	"chainguard.dev/refactoraf/report"
	"chainguard.dev/refactoraf/repoaccess"
	"chainguard.dev/refactoraf/selector"
)

type config struct {
	// GitHub access
	Token      string `env:"TOKEN, required"`
	Repository string `env:"REPOSITORY, required"`
	BaseBranch string `env:"BASE_BRANCH"`

	// LLM backend
	Provider      string `env:"LLM_PROVIDER, default=openai"`
	Model         string `env:"MODEL, default=openai/gpt-4o-mini"`
	OpenAIKey     string `env:"OPENAI_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	AnthropicKey  string `env:"ANTHROPIC_KEY"`
	GeminiKey     string `env:"GEMINI_KEY"`

	// File selection
	FileExtension string `env:"FILE_EXTENSION, default=.java"`
	FileCount     int    `env:"FILE_COUNT, default=2"`

	// Identity prefixes the branch names this tool creates.
	Identity string `env:"IDENTITY, default=refactoraf"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	chat, err := newChat(ctx, &cfg)
	if err != nil {
		clog.FatalContextf(ctx, "creating %s chat client: %v", cfg.Provider, err)
	}

	gh, err := repoaccess.New(ctx, cfg.Token)
	if err != nil {
		clog.FatalContextf(ctx, "creating GitHub client: %v", err)
	}

	p := pipeline.New(
		gh,
		selector.New(
			selector.WithExtension(cfg.FileExtension),
			selector.WithCount(cfg.FileCount),
		),
		refactor.NewRequester(chat, gh, cfg.Model),
		publisher.New(publisher.WithIdentity(cfg.Identity)),
	)

	clog.InfoContextf(ctx, "Refactoring %s with %s (%s)", cfg.Repository, cfg.Model, cfg.Provider)
	outcome, err := p.Run(ctx, pipeline.Config{
		Repository: cfg.Repository,
		BaseBranch: cfg.BaseBranch,
	})
	if err != nil {
		clog.FatalContextf(ctx, "refactoring run failed: %v", err)
	}

	report.Write(os.Stdout, outcome)
}

// newChat builds the chat backend named by LLM_PROVIDER.
func newChat(ctx context.Context, cfg *config) (llmchat.Chat, error) {
	switch cfg.Provider {
	case "openai":
		var opts []openaichat.Option
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openaichat.WithBaseURL(cfg.OpenAIBaseURL))
		}
		return openaichat.New(cfg.OpenAIKey, opts...)
	case "anthropic":
		return claudechat.New(cfg.AnthropicKey)
	case "gemini":
		return geminichat.New(ctx, cfg.GeminiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
