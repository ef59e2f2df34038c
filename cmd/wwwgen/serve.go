package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wwwgen/internal/builder"
	"wwwgen/internal/server"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve [flags] <sourceDir> [destDir]",
		Short: "Run a local dev server with auto-rebuild",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			src, dst := args[0], destination(args)
			if dst == "" {
				tmp, err := os.MkdirTemp("", "wwwgen-serve-")
				if err != nil {
					return err
				}
				defer os.RemoveAll(tmp)
				dst = tmp
			}

			buildOpts := opts.buildOptions()
			build := func() error {
				_, err := builder.BuildSite(src, dst, buildOpts, logger)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, port, src, dst, build, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 4000, "Port for the local development server.")
	return cmd
}
