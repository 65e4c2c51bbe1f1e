/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package publisher pushes a run's rewrites to the remote repository: a
// fresh timestamped branch off the base branch, one update-file commit per
// rewritten file, and a pull request whose body aggregates the per-file
// design-smell reports.
package publisher

import (
	"context"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/repoaccess"
)

// DefaultIdentity is the branch-name prefix for published changes.
const DefaultIdentity = "refactoraf"

// commitMessage is used for every file update in a run.
const commitMessage = "Apply suggested refactorings for selected files"

// RepoWriter is the repository surface the publisher mutates. Satisfied by
// *repoaccess.Client.
type RepoWriter interface {
	BranchHead(ctx context.Context, repo *repoaccess.Repository, branch string) (string, error)
	CreateBranch(ctx context.Context, repo *repoaccess.Repository, name, sha string) error
	File(ctx context.Context, repo *repoaccess.Repository, path, ref string) (*repoaccess.FileContent, error)
	UpdateFile(ctx context.Context, repo *repoaccess.Repository, path, branch, sha, message, content string) error
	CreatePullRequest(ctx context.Context, repo *repoaccess.Repository, title, body, head, base string) (string, error)
}

// FileUpdate is one file's replacement content.
type FileUpdate struct {
	Path    string
	Content string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithIdentity overrides the branch-name prefix.
func WithIdentity(identity string) Option {
	return func(p *Publisher) {
		p.identity = identity
	}
}

// WithClock overrides the time source used for branch names. Tests inject a
// fixed clock.
func WithClock(clock func() time.Time) Option {
	return func(p *Publisher) {
		p.clock = clock
	}
}

// Publisher creates branches and commits for a run's rewrites.
type Publisher struct {
	identity string
	clock    func() time.Time
}

// New creates a Publisher with the given options.
func New(opts ...Option) *Publisher {
	p := &Publisher{
		identity: DefaultIdentity,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BranchName derives the branch name for a run starting now. The timestamp
// suffix makes names unique across runs in different seconds.
func (p *Publisher) BranchName() string {
	return p.identity + "-" + p.clock().Format("20060102150405")
}

// Publish creates a new branch off base and commits each update in order,
// one commit per file. The first rejected call (stale SHA, permissions)
// propagates; files already committed stay on the branch. There is no
// rollback.
func (p *Publisher) Publish(ctx context.Context, w RepoWriter, repo *repoaccess.Repository, base string, updates []FileUpdate) (string, error) {
	log := clog.FromContext(ctx)

	branch := p.BranchName()

	baseSHA, err := w.BranchHead(ctx, repo, base)
	if err != nil {
		return "", fmt.Errorf("resolving base branch %s: %w", base, err)
	}

	log.With("branch", branch).With("base", base).Info("Creating branch")
	if err := w.CreateBranch(ctx, repo, branch, baseSHA); err != nil {
		return "", err
	}

	for _, update := range updates {
		log.With("path", update.Path).With("repo", repo.FullName).Info("Updating file")

		// The update call needs the file's current blob SHA on the new
		// branch, which at this point still matches the base branch.
		current, err := w.File(ctx, repo, update.Path, branch)
		if err != nil {
			return "", err
		}
		if err := w.UpdateFile(ctx, repo, update.Path, branch, current.SHA, commitMessage, update.Content); err != nil {
			return "", err
		}
	}

	return branch, nil
}
