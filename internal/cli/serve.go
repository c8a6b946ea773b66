package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"redline/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diff, sections and render transforms over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			cfg := e.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if cfg.Server.Token == "" {
				e.log.Warn("server.token is empty; requests are not authenticated")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "redline listening on %s\n", cfg.Server.Addr)
			return server.New(cfg, e.log).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
