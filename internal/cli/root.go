// Package cli implements the flyer command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type rootFlags struct {
	config string
	debug  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "flyer",
		Short:        "Generate property flyers as PDF",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "flyer.yaml", "configuration file")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		generateCmd(flags),
		batchCmd(flags),
		serveCmd(flags),
		templatesCmd(flags),
	)
	return cmd
}
