/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package publisher

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/repoaccess"
)

// FileReport pairs a rewritten file with its design-smell report for the
// pull request body.
type FileReport struct {
	Path   string
	Smells string
}

var prTitleTemplate = template.Must(template.New("pr-title").Parse(
	`Automated refactoring: code quality improvements`))

var prBodyTemplate = template.Must(template.New("pr-body").Parse(
	`## Automated Refactoring Summary
{{range .}}
### File: ` + "`{{.Path}}`" + `

**Design smells detected:**

{{.Smells}}
{{end}}`))

// OpenPullRequest opens the run's pull request and returns its URL. When
// repo is a fork with a known parent, the PR targets the parent and the
// head branch is qualified with the fork owner's login; otherwise the PR
// stays on repo with a bare head branch.
func (p *Publisher) OpenPullRequest(ctx context.Context, w RepoWriter, repo *repoaccess.Repository, branch, base string, reports []FileReport) (string, error) {
	target := repo
	head := branch
	if repo.Fork && repo.Parent != nil {
		target = repo.Parent
		head = repo.Owner + ":" + branch
	}

	var title, body strings.Builder
	if err := prTitleTemplate.Execute(&title, reports); err != nil {
		return "", fmt.Errorf("executing title template: %w", err)
	}
	if err := prBodyTemplate.Execute(&body, reports); err != nil {
		return "", fmt.Errorf("executing body template: %w", err)
	}

	clog.InfoContextf(ctx, "Creating pull request on %s with head %s and base %s", target.FullName, head, base)

	url, err := w.CreatePullRequest(ctx, target, title.String(), body.String(), head, base)
	if err != nil {
		return "", err
	}
	return url, nil
}
