/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package repoaccess

import (
	"context"
	"fmt"

	"github.com/google/go-github/v84/github"
)

// BranchHead returns the SHA of the commit at the tip of branch.
func (c *Client) BranchHead(ctx context.Context, repo *Repository, branch string) (string, error) {
	b, _, err := c.gh.Repositories.GetBranch(ctx, repo.Owner, repo.Name, branch, 1)
	if err != nil {
		return "", fmt.Errorf("getting branch %s of %s: %w", branch, repo.FullName, err)
	}
	return b.GetCommit().GetSHA(), nil
}

// CreateBranch creates refs/heads/{name} in repo pointing at sha.
func (c *Client) CreateBranch(ctx context.Context, repo *Repository, name, sha string) error {
	_, _, err := c.gh.Git.CreateRef(ctx, repo.Owner, repo.Name, github.CreateRef{
		Ref: "refs/heads/" + name,
		SHA: sha,
	})
	if err != nil {
		return fmt.Errorf("creating branch %s in %s: %w", name, repo.FullName, err)
	}
	return nil
}

// CreatePullRequest opens a pull request on repo and returns its HTML URL.
func (c *Client) CreatePullRequest(ctx context.Context, repo *Repository, title, body, head, base string) (string, error) {
	pr, _, err := c.gh.PullRequests.Create(ctx, repo.Owner, repo.Name, &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(base),
	})
	if err != nil {
		return "", fmt.Errorf("creating pull request in %s: %w", repo.FullName, err)
	}
	return pr.GetHTMLURL(), nil
}
