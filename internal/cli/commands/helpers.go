package commands

import (
	"context"

	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/core/index"
	"github.com/hernantz/jay/internal/core/logger"
	"github.com/hernantz/jay/internal/core/recent"
)

// openIndex loads the frecency index described by cfg
func openIndex(ctx context.Context, cfg *config.Config) (*index.Index, error) {
	return index.Open(ctx, cfg.IndexPath(),
		index.WithMaxSize(cfg.IndexMaxSize),
		index.WithThreshold(cfg.MatchThreshold),
		index.WithLogger(logger.FromContext(ctx)),
	)
}

// openRecent returns the recent directory pointer described by cfg
func openRecent(ctx context.Context, cfg *config.Config) *recent.Pointer {
	return recent.New(cfg.RecentPath(), recent.WithLogger(logger.FromContext(ctx)))
}
