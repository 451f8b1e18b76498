package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/fsprobe/fsprobe/internal/schema"
	"github.com/spf13/cobra"
)

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the normalized metadata record for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probeHandler := probe.NewHandler(&schema.OS{})

			md, err := probeHandler.Metadata(args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(md, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render record: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			slog.Debug("Probed path.",
				"path", args[0],
				"size", humanize.IBytes(md.Size),
			)

			return nil
		},
	}
}
