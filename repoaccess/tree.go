/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package repoaccess

import (
	"context"
	"fmt"
)

// EntryTypeBlob is the tree entry type for file entries.
const EntryTypeBlob = "blob"

// TreeEntry is one entry in a repository tree listing.
type TreeEntry struct {
	Path string
	Type string
	SHA  string
}

// IsBlob reports whether the entry is a file.
func (e TreeEntry) IsBlob() bool {
	return e.Type == EntryTypeBlob
}

// Tree lists the full recursive tree of repo at ref.
func (c *Client) Tree(ctx context.Context, repo *Repository, ref string) ([]TreeEntry, error) {
	tree, _, err := c.gh.Git.GetTree(ctx, repo.Owner, repo.Name, ref, true)
	if err != nil {
		return nil, fmt.Errorf("getting tree for %s@%s: %w", repo.FullName, ref, err)
	}

	entries := make([]TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, TreeEntry{
			Path: entry.GetPath(),
			Type: entry.GetType(),
			SHA:  entry.GetSHA(),
		})
	}
	return entries, nil
}
