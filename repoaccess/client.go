/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package repoaccess is the typed boundary to the GitHub API. Every
// operation the workflow consumes (repository resolution, tree listing,
// content retrieval, ref creation, file updates, pull requests) is wrapped
// here and decoded into explicit records at the boundary, so the rest of
// the program never handles raw API responses.
package repoaccess

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the GitHub API base URL. Useful for GitHub
// Enterprise and for pointing tests at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client used for API calls. When set,
// the token is not applied; the provided client is responsible for
// authentication.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client wraps the GitHub API client for a single authenticated identity.
type Client struct {
	gh         *github.Client
	baseURL    string
	httpClient *http.Client
}

// New creates a Client authenticated with token. It fails when the token is
// empty, before any network call is made.
func New(ctx context.Context, token string, opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if token == "" {
			return nil, errors.New("GitHub token is required")
		}
		c.httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		))
	}

	c.gh = github.NewClient(c.httpClient)
	if c.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		c.gh.BaseURL = base
	}

	return c, nil
}

// ParseFullName splits an "owner/name" repository identifier.
func ParseFullName(fullName string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", fullName)
	}
	return owner, name, nil
}
