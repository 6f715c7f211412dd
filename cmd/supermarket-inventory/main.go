package main

import (
	"log/slog"
	"os"

	"github.com/freshmart/supermarket-inventory/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "supermarket-inventory",
		Short:         "Server-rendered supermarket inventory manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file (defaults to CONFIG_PATH, then environment variables)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())

	return root
}

// loadConfig reads .env (when present) and then the application config.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.String("error", err.Error()))
	}

	return config.Load(configPath)
}
