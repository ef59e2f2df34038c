package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wwwgen/internal/builder"
	"wwwgen/internal/logging"
)

// globalOptions are shared by every command.
type globalOptions struct {
	debug  bool
	unsafe bool
}

func (o *globalOptions) buildOptions() builder.BuildOptions {
	return builder.BuildOptions{Unsafe: o.unsafe, Debug: o.debug}
}

func (o *globalOptions) logger() (*zap.SugaredLogger, error) {
	return logging.New(o.debug)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "wwwgen [flags] <sourceDir> [destDir]",
		Short: "wwwgen - a static website generator",
		Long: `wwwgen renders a tree of templated pages, blog posts and author
profiles into a static website with a sitemap and feeds.

Without destDir, the site is built into a new temporary directory.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			stats, err := builder.BuildSite(args[0], destination(args), opts.buildOptions(), logger)
			if err != nil {
				return fmt.Errorf("site generation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Success! Generated %d pages and %d posts in %s\n", stats.Pages, stats.Posts, stats.Dest)
			return nil
		},
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging and dump page metadata.")
	cmd.PersistentFlags().BoolVar(&opts.unsafe, "unsafe", false, "Disable HTML sanitization of Markdown pages.")
	cmd.AddCommand(newServeCmd(opts), newNewCmd())
	return cmd
}

// destination returns the optional second positional argument.
func destination(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
