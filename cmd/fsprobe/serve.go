package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsprobe/fsprobe/internal/command"
	"github.com/fsprobe/fsprobe/internal/configuration"
	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/fsprobe/fsprobe/internal/schema"
	"github.com/spf13/cobra"
)

const readHeaderTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string
	var envFile string
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the filesystem inspection API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

			config, err := configHandler.Load(configPath, envFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if address != "" {
				config.Server.Address = address
			}

			setupLogging(config.SlogLevel())

			commandHandler := command.NewHandler(probe.NewHandler(&schema.OS{}))
			commandHandler.SetVersionInfo(Version, GitCommit, BuildTime)

			return serve(cmd.Context(), config, commandHandler)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to an optional dotenv override file")
	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides the configuration)")

	return cmd
}

func serve(ctx context.Context, config *configuration.Config, commandHandler *command.Handler) error {
	server := &http.Server{
		Addr:              config.Server.Address,
		Handler:           commandHandler.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe()
	}()

	slog.Info("Serving the filesystem inspection API.",
		"address", config.Server.Address,
		"version", Version,
	)

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(config.Server.ShutdownTimeoutSecs)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	slog.Info("Server stopped.")

	return nil
}
