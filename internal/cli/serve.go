package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/flyer/server"
)

func serveCmd(flags *rootFlags) *cobra.Command {
	var (
		listen          string
		shutdownTimeout time.Duration
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve flyer generation over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, flags.config, flags.debug)
			if err != nil {
				return err
			}
			defer a.close()

			opts := []server.Option{server.WithLogger(a.logger)}
			store, closeStore, err := a.projectStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()
			if store != nil {
				opts = append(opts, server.WithProjects(store))
			}

			addr := a.cfg.Listen
			if listen != "" {
				addr = listen
			}
			return server.New(a.gen, opts...).Run(ctx, addr, shutdownTimeout)
		},
	}

	c.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	c.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	return c
}
