package commands

import (
	"context"
	"io"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/shell"
)

// runSetupBash installs the bash script and prints its path, so that
// `source "$(jay --setup-bash)"` loads it.
func runSetupBash(ctx context.Context, out io.Writer, cfg *config.Config) error {
	path := cfg.ScriptPath()
	if err := shell.InstallBash(ctx, path, shell.DefaultScriptData()); err != nil {
		return err
	}
	ui.OutputLine(out, "%s", path)
	return nil
}
