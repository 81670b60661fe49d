package commands

import (
	"context"
	"io"
	"time"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/config"
)

func runList(ctx context.Context, out io.Writer, cfg *config.Config, format ui.OutputFormat) error {
	idx, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}
	return ui.NewIndexFormatter(format, out, time.Now).Index(idx.Entries())
}
