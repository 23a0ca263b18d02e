package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/pkg/logx"
)

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "SpaceX launch records dashboard",
	Long: "launchdash serves an interactive dashboard over historical launch records.\n" +
		"Settings come from the environment (and an optional .env file).",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	// Without a subcommand the dashboard is served.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("launchdash failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

// setup loads the config and installs the configured logger as the default.
func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config.Load: %w", err)
	}

	log, err := logx.NewLogger(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return config.Config{}, fmt.Errorf("logx.NewLogger: %w", err)
	}

	slog.SetDefault(log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	return cfg, nil
}
