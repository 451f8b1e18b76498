// fsprobe exposes filesystem inspection primitives - existence checks and
// normalized metadata retrieval - to host applications over a narrow HTTP
// command boundary, with one-shot and interactive views for the terminal.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fsprobe",
		Short:         "Filesystem inspection over a narrow command boundary",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newStatCmd(),
		newExistsCmd(),
		newWatchCmd(),
	)

	return cmd
}

func run() int {
	setupLogging(slog.LevelInfo)

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed.", "err", err)

		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
