package commands

import (
	"context"
	"io"
	"os"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/core/logger"
)

func runPrune(ctx context.Context, out io.Writer, cfg *config.Config) error {
	idx, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}

	removed, err := idx.Prune(ctx, dirExists)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("pruned index", "removed", len(removed), "kept", idx.Len())

	for _, p := range removed {
		ui.OutputLine(out, "%s %s", ui.DimStyle.Render("removed"), p)
	}
	ui.Success(out, "Pruned %d of %d directories", len(removed), len(removed)+idx.Len())
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
