package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hernantz/jay/internal/cli/ui"
	"github.com/hernantz/jay/internal/config"
	"github.com/hernantz/jay/internal/core/jump"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags of one invocation
type rootOptions struct {
	configPath string
	setupBash  bool
	list       bool
	prune      bool
	format     string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the jay command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "jay [INPUT...]",
		Short: "Jump to directories by fuzzy name",
		Long: `jay prints the directory that best matches INPUT so a shell function can cd into it.

With no INPUT it goes back to the directory of the last jump, or home.
"-" stands for that directory, ".", ".." and "..." for the current one and
its parents. Further INPUT words walk down the tree one fuzzy match at a
time; a single word not found under the current directory is looked up in
the index of visited directories.`,
		Example: `  # Install the "j" shell function
  source "$(jay --setup-bash)"

  # Jump to the best indexed match for "proj"
  j proj

  # Walk down from ./proj into its best match for "src"
  j proj src

  # Back to where the last jump started
  j -`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return opts.complete(cmd, args, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.SetVersionTemplate(versionTemplate)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/jay/config.yaml)")
	flags.BoolVar(&opts.setupBash, "setup-bash", false, "Write the bash integration script and print its path")
	flags.BoolVar(&opts.list, "list", false, "List indexed directories, most recent first")
	flags.BoolVar(&opts.prune, "prune", false, "Remove indexed directories that no longer exist")
	flags.StringVar(&opts.format, "format", "pretty", "Output format for --list (pretty, json)")
	cmd.MarkFlagsMutuallyExclusive("setup-bash", "list", "prune")
	RegisterLoggerFlags(cmd, &opts.logLevel, &opts.logFormat)

	return cmd
}

// Execute runs the root command and reports its error on stderr. Not-found
// and stale-directory errors are not reported: the former is silent by
// contract and the latter has already printed its diagnostic.
func Execute() error {
	cmd := NewRootCommand()
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

func reportError(w io.Writer, err error) {
	var stale *jump.StaleDirectoryError
	if errors.Is(err, jump.ErrNotFound) || errors.As(err, &stale) {
		return
	}
	ui.Error(w, "%v", err)
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	if (o.setupBash || o.list || o.prune) && len(args) > 0 {
		return fmt.Errorf("--setup-bash, --list and --prune take no INPUT")
	}

	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return err
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, log, err := withLogger(cmd, cfg)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", "data_dir", cfg.DataDir, "threshold", cfg.MatchThreshold)

	switch {
	case o.setupBash:
		return runSetupBash(ctx, cmd.OutOrStdout(), cfg)
	case o.list:
		return runList(ctx, cmd.OutOrStdout(), cfg, format)
	case o.prune:
		return runPrune(ctx, cmd.OutOrStdout(), cfg)
	default:
		return runJump(ctx, cmd.OutOrStdout(), cfg, args)
	}
}

// loadConfig reads the config file and environment, then applies flags
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagLogLevelName) {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed(flagLogFormatName) {
		cfg.LogFormat = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
