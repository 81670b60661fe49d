package jump

import (
	"context"
	"path/filepath"

	"github.com/hernantz/jay/internal/fuzzy"
)

// Complete suggests names for the token being typed: the directories under
// wherever the preceding tokens lead, best subsequence match first.
func (r *Resolver) Complete(ctx context.Context, tokens []string, partial string) []string {
	base, ok := r.completionBase(ctx, tokens)
	if !ok {
		return nil
	}

	dirs, err := ListDirs(base)
	if err != nil {
		return nil
	}
	return fuzzy.Filter(partial, dirs)
}

func (r *Resolver) completionBase(ctx context.Context, tokens []string) (string, bool) {
	if len(tokens) == 0 {
		cwd, err := r.getwd()
		return cwd, err == nil
	}

	start, terms := string(filepath.Separator), tokens
	if root, rooted := r.root(ctx, tokens[0]); rooted {
		start, terms = root, tokens[1:]
	}
	return Walk(start, terms, r.match), true
}
