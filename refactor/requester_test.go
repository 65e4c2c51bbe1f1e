/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chainguard.dev/refactoraf/llmchat"
	"chainguard.dev/refactoraf/refactor"
	"chainguard.dev/refactoraf/repoaccess"
)

// fakeFetcher serves fixed file contents.
type fakeFetcher struct {
	contents map[string]string
}

func (f *fakeFetcher) File(_ context.Context, _ *repoaccess.Repository, path, _ string) (*repoaccess.FileContent, error) {
	content, ok := f.contents[path]
	if !ok {
		return nil, errors.New("not found: " + path)
	}
	return &repoaccess.FileContent{Path: path, SHA: "f1", Content: content}, nil
}

// scriptedChat replays canned completions and records the requests it saw.
type scriptedChat struct {
	replies  []string
	requests []llmchat.Request
}

func (c *scriptedChat) Complete(_ context.Context, req llmchat.Request) (llmchat.Completion, error) {
	c.requests = append(c.requests, req)
	if len(c.replies) == 0 {
		return llmchat.Completion{}, errors.New("no scripted reply left")
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return llmchat.Completion{Text: reply, PromptTokens: 10, CompletionTokens: 5}, nil
}

func TestRefactorFile(t *testing.T) {
	code := "public class Main { void run() { if (a < b) {} } }"
	chat := &scriptedChat{replies: []string{
		"High cyclomatic complexity in run().",
		"```java\npublic class Main { void run() {} }\n```",
	}}
	fetcher := &fakeFetcher{contents: map[string]string{"src/Main.java": code}}
	repo := &repoaccess.Repository{Owner: "octocat", Name: "hello-world", FullName: "octocat/hello-world"}

	r := refactor.NewRequester(chat, fetcher, "openai/gpt-4o-mini")
	got, err := r.RefactorFile(context.Background(), repo, "src/Main.java", "main")
	if err != nil {
		t.Fatalf("RefactorFile() error = %v", err)
	}

	if got.Path != "src/Main.java" {
		t.Errorf("path: got = %q, wanted = %q", got.Path, "src/Main.java")
	}
	if want := "High cyclomatic complexity in run()."; got.Smells != want {
		t.Errorf("smells: got = %q, wanted = %q", got.Smells, want)
	}
	if want := "public class Main { void run() {} }"; got.Content != want {
		t.Errorf("content: got = %q, wanted fence-stripped rewrite %q", got.Content, want)
	}

	if len(chat.requests) != 2 {
		t.Fatalf("completion count: got = %d, wanted = 2", len(chat.requests))
	}

	smellReq, rewriteReq := chat.requests[0], chat.requests[1]
	if !strings.HasPrefix(smellReq.User, "Design Smell Finder: ") {
		t.Errorf("first request role: got = %q, wanted Design Smell Finder prefix", smellReq.User[:40])
	}
	if !strings.HasPrefix(rewriteReq.User, "Refactoring Expert: ") {
		t.Errorf("second request role: got = %q, wanted Refactoring Expert prefix", rewriteReq.User[:40])
	}
	// The code is XML chardata: metacharacters must be escaped.
	if !strings.Contains(smellReq.User, "a &lt; b") {
		t.Error("first request: code payload is not XML-escaped")
	}
	if !strings.Contains(smellReq.User, "- Cyclomatic complexity") {
		t.Error("first request: smell checklist missing")
	}
	// The rewrite prompt embeds the smell report and the original code.
	if !strings.Contains(rewriteReq.User, "High cyclomatic complexity") {
		t.Error("second request: smell report not embedded")
	}
	if !strings.Contains(rewriteReq.User, "a &lt; b") {
		t.Error("second request: original code not embedded")
	}

	for _, req := range chat.requests {
		if req.System != "You are a helpful assistant." {
			t.Errorf("system role: got = %q", req.System)
		}
		if req.Model != "openai/gpt-4o-mini" {
			t.Errorf("model: got = %q, wanted = %q", req.Model, "openai/gpt-4o-mini")
		}
	}
}

func TestRefactorFileFetchError(t *testing.T) {
	chat := &scriptedChat{replies: []string{"unused"}}
	r := refactor.NewRequester(chat, &fakeFetcher{}, "openai/gpt-4o-mini")
	repo := &repoaccess.Repository{Owner: "octocat", Name: "hello-world"}

	if _, err := r.RefactorFile(context.Background(), repo, "missing.java", "main"); err == nil {
		t.Error("RefactorFile() error = nil, wanted fetch error")
	}
	if len(chat.requests) != 0 {
		t.Errorf("completion count: got = %d, wanted = 0 (no LLM call on fetch failure)", len(chat.requests))
	}
}

func TestRefactorFileChatError(t *testing.T) {
	// First completion fails; the error must propagate with no rewrite call.
	chat := &scriptedChat{}
	fetcher := &fakeFetcher{contents: map[string]string{"a.java": "class A {}"}}
	r := refactor.NewRequester(chat, fetcher, "openai/gpt-4o-mini")
	repo := &repoaccess.Repository{Owner: "octocat", Name: "hello-world"}

	if _, err := r.RefactorFile(context.Background(), repo, "a.java", "main"); err == nil {
		t.Error("RefactorFile() error = nil, wanted completion error")
	}
	if len(chat.requests) != 1 {
		t.Errorf("completion count: got = %d, wanted = 1 (no second call after failure)", len(chat.requests))
	}
}
