package commands

import (
	"context"
	"io"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/core/jump"
	"github.com/hernantz/jay/internal/core/logger"
)

// runJump resolves args and prints the target directory to out
func runJump(ctx context.Context, out io.Writer, cfg *config.Config, args []string) error {
	idx, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}

	r := jump.New(idx, openRecent(ctx, cfg), ui.NewLineSink(out),
		jump.WithThreshold(cfg.MatchThreshold),
		jump.WithLogger(logger.FromContext(ctx)),
	)
	return r.Run(ctx, args)
}
