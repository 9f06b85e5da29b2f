package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/payoutopt/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.settings.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.engine(a.settings.Engine.Parallel), a.logger, server.Options{
				ReadTimeout:  a.settings.Server.ReadTimeout,
				MaxBodyBytes: a.settings.Server.MaxBodyBytes,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; defaults to server.addr")
	return cmd
}
