/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a run summary for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"chainguard.dev/refactoraf/pipeline"
)

// newMarkdownTable creates a table writer with the markdown formatting used
// by all run summaries.
func newMarkdownTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 100,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// Write renders a human-readable summary of one run: a per-file table of
// smell findings and rewrite sizes, then the branch and pull request when
// the run published anything.
func Write(w io.Writer, outcome *pipeline.Outcome) {
	fmt.Fprintf(w, "## Refactoring run: %s (base %s)\n\n",
		outcome.Repository.FullName, outcome.BaseBranch)

	if len(outcome.Refactorings) == 0 {
		fmt.Fprintln(w, "No eligible files found; nothing was changed.")
		return
	}

	table := newMarkdownTable([]string{"File", "Smell findings", "Rewritten size"}, w)
	for _, r := range outcome.Refactorings {
		_ = table.Append([]string{
			r.Path,
			fmt.Sprintf("%d lines", countLines(r.Smells)),
			fmt.Sprintf("%d bytes", len(r.Content)),
		})
	}
	_ = table.Render()

	fmt.Fprintf(w, "\nBranch: %s\n", outcome.Branch)
	fmt.Fprintf(w, "Pull request: %s\n", outcome.PullRequestURL)
}

func countLines(s string) int {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
