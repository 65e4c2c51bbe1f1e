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

// FileContent is a file's decoded content at a specific ref, along with the
// blob SHA required to update it.
type FileContent struct {
	Path    string
	SHA     string
	Content string
}

// File fetches the decoded content of path in repo at ref.
func (c *Client) File(ctx context.Context, repo *Repository, path, ref string) (*FileContent, error) {
	file, _, _, err := c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		return nil, fmt.Errorf("getting contents of %s@%s: %w", path, ref, err)
	}
	if file == nil {
		return nil, fmt.Errorf("path %s@%s is not a file", path, ref)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding contents of %s@%s: %w", path, ref, err)
	}

	return &FileContent{
		Path:    file.GetPath(),
		SHA:     file.GetSHA(),
		Content: content,
	}, nil
}

// UpdateFile overwrites path on branch with content, committing with
// message. The sha must be the file's current blob SHA on that branch.
func (c *Client) UpdateFile(ctx context.Context, repo *Repository, path, branch, sha, message, content string) error {
	_, _, err := c.gh.Repositories.UpdateFile(ctx, repo.Owner, repo.Name, path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: []byte(content),
		SHA:     github.Ptr(sha),
		Branch:  github.Ptr(branch),
	})
	if err != nil {
		return fmt.Errorf("updating %s on %s: %w", path, branch, err)
	}
	return nil
}
