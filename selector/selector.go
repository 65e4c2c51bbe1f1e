/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package selector chooses which repository files a refactoring run will
// touch: filter the tree by extension, group by parent directory, pick one
// directory at random, and sample up to a fixed count of its files.
// Keeping the selection within a single directory keeps each run's pull
// request focused on one area of the codebase.
package selector

import (
	"context"
	"maps"
	"math/rand/v2"
	"path"
	"slices"
	"strings"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/refactoraf/repoaccess"
)

const (
	// DefaultExtension matches the source files eligible for refactoring.
	DefaultExtension = ".java"

	// DefaultCount is how many files a run selects.
	DefaultCount = 2
)

// Option configures a Selector.
type Option func(*Selector)

// WithExtension sets the file extension filter (including the leading dot).
func WithExtension(ext string) Option {
	return func(s *Selector) {
		s.extension = ext
	}
}

// WithCount sets the maximum number of files to select.
func WithCount(count int) Option {
	return func(s *Selector) {
		s.count = count
	}
}

// WithRand sets the random source. Tests inject a seeded source for
// deterministic selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		s.rng = rng
	}
}

// Selector samples candidate files from a repository tree.
type Selector struct {
	extension string
	count     int
	rng       *rand.Rand
}

// New creates a Selector with the given options.
func New(opts ...Option) *Selector {
	s := &Selector{
		extension: DefaultExtension,
		count:     DefaultCount,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks up to count matching blob paths from a single directory,
// chosen uniformly at random among directories that contain matches. The
// returned paths are sorted. Returns an empty selection when nothing
// matches.
func (s *Selector) Select(ctx context.Context, entries []repoaccess.TreeEntry) []string {
	if s.count <= 0 {
		return nil
	}

	// Group matching blobs by parent directory.
	dirFiles := make(map[string][]string)
	for _, entry := range entries {
		if !entry.IsBlob() || !strings.HasSuffix(entry.Path, s.extension) {
			continue
		}
		dir := path.Dir(entry.Path)
		dirFiles[dir] = append(dirFiles[dir], entry.Path)
	}
	if len(dirFiles) == 0 {
		return nil
	}

	// Sorted directory list so a seeded source selects reproducibly.
	dirs := slices.Sorted(maps.Keys(dirFiles))
	dir := dirs[s.rng.IntN(len(dirs))]

	// Sample without replacement.
	files := slices.Clone(dirFiles[dir])
	s.rng.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})
	files = files[:min(s.count, len(files))]
	slices.Sort(files)

	log := clog.FromContext(ctx)
	log.With("directory", dir).With("count", len(files)).Info("Selected files for refactoring")
	for _, f := range files {
		log.Infof(" - %s", f)
	}
	return files
}
