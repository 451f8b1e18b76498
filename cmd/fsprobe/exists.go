package main

import (
	"fmt"
	"strconv"

	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/fsprobe/fsprobe/internal/schema"
	"github.com/spf13/cobra"
)

func newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Print whether a path can be probed at all",
		Long:  "Prints true or false. The check itself never fails; any probe failure reports false.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probeHandler := probe.NewHandler(&schema.OS{})

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(probeHandler.Exists(args[0])))

			return nil
		},
	}
}
