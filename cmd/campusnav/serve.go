// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/osmmap"
	"github.com/katalvlaran/campusnav/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			l, err := a.load(ctx)
			if err != nil {
				return err
			}
			stats, err := osmmap.Analyze(ctx, l.m, l.g, l.report)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			srv := server.New(l.nav,
				server.WithStats(stats),
				server.WithGatherer(l.registry),
				server.WithAllowOrigins(a.cfg.Server.AllowOrigins...),
				server.WithLogger(a.logger.With("component", "http")),
			)

			return srv.Run(ctx, addr, a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

