/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package repoaccess

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
)

// Repository is the resolved handle for a remote repository. Parent is
// populated when the repository is a fork, and pull requests then target it.
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	DefaultBranch string
	Fork          bool
	Parent        *Repository
}

// Resolve fetches the repository identified by "owner/name" and decodes it,
// including the upstream parent when the repository is a fork.
func (c *Client) Resolve(ctx context.Context, fullName string) (*Repository, error) {
	owner, name, err := ParseFullName(fullName)
	if err != nil {
		return nil, err
	}

	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("getting repository %s: %w", fullName, err)
	}

	resolved := &Repository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
		Fork:          repo.GetFork(),
	}
	if parent := repo.GetParent(); parent != nil {
		resolved.Parent = &Repository{
			Owner:         parent.GetOwner().GetLogin(),
			Name:          parent.GetName(),
			FullName:      parent.GetFullName(),
			DefaultBranch: parent.GetDefaultBranch(),
		}
	}

	clog.InfoContextf(ctx, "Connected to GitHub repository: %s", resolved.FullName)
	return resolved, nil
}
