package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"launchdash/internal/application"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard, probe and metrics endpoints",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	if err = application.Run(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("application.Run: %w", err)
	}

	slog.Info("application stopped")

	return nil
}
