package commands

import (
	"io"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/core/jump"
	"github.com/spf13/cobra"
)

// complete lists the directories the next INPUT word can name. Failures
// yield no suggestions rather than an error.
func (o *rootOptions) complete(cmd *cobra.Command, args []string, toComplete string) []string {
	if o.setupBash || o.list || o.prune {
		return nil
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil
	}
	ctx, _, err := withLogger(cmd, cfg)
	if err != nil {
		return nil
	}

	// completion never reads or writes the index
	r := jump.New(nil, openRecent(ctx, cfg), ui.NewLineSink(io.Discard),
		jump.WithThreshold(cfg.MatchThreshold),
	)
	return r.Complete(ctx, args, toComplete)
}
