/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaichat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chainguard.dev/refactoraf/llmchat"
	"chainguard.dev/refactoraf/llmchat/openaichat"
)

// completionRequest mirrors the parts of the wire request the tests inspect.
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestNew(t *testing.T) {
	t.Run("empty key rejected", func(t *testing.T) {
		if _, err := openaichat.New(""); err == nil {
			t.Error("New() error = nil, wanted missing-key error")
		}
	})

	t.Run("key accepted", func(t *testing.T) {
		if _, err := openaichat.New("sk-test"); err != nil {
			t.Errorf("New() error = %v, wanted nil", err)
		}
	})
}

func TestComplete(t *testing.T) {
	var got completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("request path: got = %q, wanted = %q", r.URL.Path, "/chat/completions")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "openai/gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "Looks reasonable."}
			}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 7, "total_tokens": 49}
		}`))
	}))
	defer server.Close()

	chat, err := openaichat.New("sk-test", openaichat.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	completion, err := chat.Complete(context.Background(), llmchat.Request{
		System: "You are a helpful assistant.",
		User:   "Review this code.",
		Model:  "openai/gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if want := "Looks reasonable."; completion.Text != want {
		t.Errorf("Complete() text: got = %q, wanted = %q", completion.Text, want)
	}
	if completion.PromptTokens != 42 || completion.CompletionTokens != 7 {
		t.Errorf("Complete() usage: got = (%d, %d), wanted = (42, 7)",
			completion.PromptTokens, completion.CompletionTokens)
	}

	if got.Model != "openai/gpt-4o-mini" {
		t.Errorf("request model: got = %q, wanted = %q", got.Model, "openai/gpt-4o-mini")
	}
	if len(got.Messages) != 2 {
		t.Fatalf("request message count: got = %d, wanted = 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("request roles: got = (%q, %q), wanted = (system, user)",
			got.Messages[0].Role, got.Messages[1].Role)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	chat, err := openaichat.New("sk-test", openaichat.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := chat.Complete(context.Background(), llmchat.Request{Model: "openai/gpt-4o-mini"}); err == nil {
		t.Error("Complete() error = nil, wanted no-choices error")
	}
}
