// Package jump turns the tokens typed after `jay` into a directory.
//
// Resolution tries, in order: the recent directory for a bare call; a
// relative path (".", "..", "...", or any existing subpath of the working
// directory) for the first token; a fuzzy walk down the tree when more tokens
// follow; and finally a fuzzy lookup in the frecency index. A resolved
// directory is then dispatched: checked for existence, recorded, and emitted.
package jump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hernantz/jay/internal/core/logger"
	"github.com/hernantz/jay/internal/fuzzy"
)

// backToken selects the recent directory as the root
const backToken = "-"

// Index is the part of the frecency index the resolver needs
type Index interface {
	FuzzyFind(term string) (string, bool)
	Update(ctx context.Context, path string) error
	Delete(ctx context.Context, path string) error
}

// Recent is the recent directory pointer
type Recent interface {
	Get(ctx context.Context) string
	Set(ctx context.Context) error
}

// Sink receives the single output line of a dispatch
type Sink interface {
	Emit(line string)
}

// Resolver resolves and dispatches token sequences
type Resolver struct {
	index   Index
	recent  Recent
	sink    Sink
	getwd   func() (string, error)
	homeDir func() (string, error)
	match   Matcher
	logger  logger.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithGetwd replaces os.Getwd
func WithGetwd(getwd func() (string, error)) Option {
	return func(r *Resolver) {
		r.getwd = getwd
	}
}

// WithHomeDir replaces os.UserHomeDir
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(r *Resolver) {
		r.homeDir = homeDir
	}
}

// WithThreshold sets the minimum score for tree walk matches
func WithThreshold(threshold int) Option {
	return func(r *Resolver) {
		r.match = FuzzyMatcher(threshold)
	}
}

// WithMatcher replaces the tree walk matcher
func WithMatcher(m Matcher) Option {
	return func(r *Resolver) {
		r.match = m
	}
}

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver
func New(index Index, recent Recent, sink Sink, opts ...Option) *Resolver {
	r := &Resolver{
		index:   index,
		recent:  recent,
		sink:    sink,
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
		match:   FuzzyMatcher(fuzzy.DefaultThreshold),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves tokens and dispatches the result
func (r *Resolver) Run(ctx context.Context, tokens []string) error {
	dir, err := r.Resolve(ctx, tokens)
	if err != nil {
		return err
	}
	return r.Dispatch(ctx, dir)
}

// Resolve picks the target directory for tokens without side effects. It
// returns ErrNotFound when nothing matches.
func (r *Resolver) Resolve(ctx context.Context, tokens []string) (string, error) {
	if len(tokens) == 0 {
		if dir := r.recent.Get(ctx); dir != "" {
			r.logger.Debug("no tokens, back to recent directory", "dir", dir)
			return dir, nil
		}
		home, err := r.homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory: %w", err)
		}
		r.logger.Debug("no tokens and no recent directory, going home", "dir", home)
		return home, nil
	}

	first := tokens[0]
	root, rooted := r.root(ctx, first)

	if len(tokens) > 1 {
		start, terms := string(filepath.Separator), tokens
		if rooted {
			start, terms = root, tokens[1:]
		}
		r.logger.Debug("walking", "root", start, "terms", terms)
		if dir := Walk(start, terms, r.match); dir != "" {
			return dir, nil
		}
		return "", ErrNotFound
	}

	if rooted {
		return root, nil
	}

	if dir, ok := r.index.FuzzyFind(first); ok {
		return dir, nil
	}
	return "", ErrNotFound
}

// root resolves the first token to a starting directory
func (r *Resolver) root(ctx context.Context, first string) (string, bool) {
	if first == backToken {
		dir := r.recent.Get(ctx)
		return dir, dir != ""
	}

	cwd, err := r.getwd()
	if err != nil {
		r.logger.Debug("working directory unavailable", "error", err)
		return "", false
	}
	return RelativeOfCwd(cwd, first)
}

// Dispatch finalizes a jump to dir. A directory that vanished is dropped from
// the index and reported; otherwise the current directory becomes the recent
// one, dir is stamped in the index and emitted.
func (r *Resolver) Dispatch(ctx context.Context, dir string) error {
	if !isDir(dir) {
		r.logger.Info("dropping vanished directory", "dir", dir)
		if err := r.index.Delete(ctx, dir); err != nil {
			return err
		}
		r.sink.Emit(fmt.Sprintf("jay: directory %s not found.", dir))
		return &StaleDirectoryError{Path: dir}
	}

	if err := r.recent.Set(ctx); err != nil {
		return err
	}
	if err := r.index.Update(ctx, dir); err != nil {
		return err
	}
	r.sink.Emit(dir)
	return nil
}
