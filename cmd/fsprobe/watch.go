package main

import (
	"time"

	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/fsprobe/fsprobe/internal/schema"
	"github.com/fsprobe/fsprobe/internal/ui"
	"github.com/spf13/cobra"
)

const defaultWatchInterval = time.Second

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Watch the metadata record of a path in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probeHandler := probe.NewHandler(&schema.OS{})
			uiHandler := ui.NewHandler(cmd.Context(), args[0], interval, probeHandler)

			return uiHandler.Launch()
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "refresh interval between probes")

	return cmd
}
