package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/o1-match/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the match API server",
		Long:  "Start an HTTP server that scores ad-hoc pairs and ranks stored talents and jobs. Stops gracefully on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.NewFromConfig(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}

	cmd.Flags().Int("port", 0, "Port to listen on (default: port from config, 8080)")
	_ = c.v.BindPFlag("port", cmd.Flags().Lookup("port"))

	return cmd
}
