/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline sequences one refactoring run: resolve the repository,
// select files, run the two-prompt round per file, publish the rewrites on
// a fresh branch, and open the pull request. Each stage runs exactly once;
// the first failure propagates with the stage named in the wrapped error.
package pipeline

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/publisher"
	"chainguard.dev/refactoraf/refactor"
	"chainguard.dev/refactoraf/repoaccess"
)

// RepoAccessor is the repository surface the pipeline consumes. Satisfied
// by *repoaccess.Client.
type RepoAccessor interface {
	Resolve(ctx context.Context, fullName string) (*repoaccess.Repository, error)
	Tree(ctx context.Context, repo *repoaccess.Repository, ref string) ([]repoaccess.TreeEntry, error)
	publisher.RepoWriter
}

// FileSelector chooses the files a run will touch. Satisfied by
// *selector.Selector.
type FileSelector interface {
	Select(ctx context.Context, entries []repoaccess.TreeEntry) []string
}

// Refactorer runs the LLM round over one file. Satisfied by
// *refactor.Requester.
type Refactorer interface {
	RefactorFile(ctx context.Context, repo *repoaccess.Repository, path, ref string) (*refactor.Refactoring, error)
}

// Config carries the per-run parameters.
type Config struct {
	// Repository is the working repository as "owner/name".
	Repository string

	// BaseBranch is the branch to select from and target with the PR.
	// Empty means the repository's default branch.
	BaseBranch string
}

// Outcome reports what a run did. Selected is empty when no eligible files
// were found; in that case no branch or PR exists and the remaining fields
// are zero.
type Outcome struct {
	Repository     *repoaccess.Repository
	BaseBranch     string
	Selected       []string
	Refactorings   []*refactor.Refactoring
	Branch         string
	PullRequestURL string
}

// Pipeline owns the stages of a run.
type Pipeline struct {
	repo      RepoAccessor
	selector  FileSelector
	requester Refactorer
	publisher *publisher.Publisher
}

// New assembles a Pipeline from its stages.
func New(repo RepoAccessor, selector FileSelector, requester Refactorer, publisher *publisher.Publisher) *Pipeline {
	return &Pipeline{
		repo:      repo,
		selector:  selector,
		requester: requester,
		publisher: publisher,
	}
}

// Run executes the workflow once.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (*Outcome, error) {
	log := clog.FromContext(ctx)

	repo, err := p.repo.Resolve(ctx, cfg.Repository)
	if err != nil {
		return nil, fmt.Errorf("resolving repository: %w", err)
	}

	base := cfg.BaseBranch
	if base == "" {
		base = repo.DefaultBranch
	}

	entries, err := p.repo.Tree(ctx, repo, base)
	if err != nil {
		return nil, fmt.Errorf("listing tree: %w", err)
	}

	selected := p.selector.Select(ctx, entries)
	outcome := &Outcome{
		Repository: repo,
		BaseBranch: base,
		Selected:   selected,
	}
	if len(selected) == 0 {
		log.Info("No eligible files found for refactoring")
		return outcome, nil
	}

	updates := make([]publisher.FileUpdate, 0, len(selected))
	reports := make([]publisher.FileReport, 0, len(selected))
	for _, path := range selected {
		refactoring, err := p.requester.RefactorFile(ctx, repo, path, base)
		if err != nil {
			return nil, fmt.Errorf("refactoring %s: %w", path, err)
		}
		outcome.Refactorings = append(outcome.Refactorings, refactoring)
		updates = append(updates, publisher.FileUpdate{Path: refactoring.Path, Content: refactoring.Content})
		reports = append(reports, publisher.FileReport{Path: refactoring.Path, Smells: refactoring.Smells})
	}

	branch, err := p.publisher.Publish(ctx, p.repo, repo, base, updates)
	if err != nil {
		return nil, fmt.Errorf("publishing changes: %w", err)
	}
	outcome.Branch = branch

	url, err := p.publisher.OpenPullRequest(ctx, p.repo, repo, branch, base, reports)
	if err != nil {
		return nil, fmt.Errorf("creating pull request: %w", err)
	}
	outcome.PullRequestURL = url

	log.With("url", url).Info("Pull request created successfully")
	return outcome, nil
}
