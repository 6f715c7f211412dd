package main

import (
	"log/slog"

	repository "github.com/freshmart/supermarket-inventory/internal/repositories"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repos, err := repository.New(cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repository.Migrate(cmd.Context(), repos.DB); err != nil {
				return err
			}

			slog.Info("tables created successfully")

			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the tables and load the sample data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repos, err := repository.New(cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repository.Migrate(cmd.Context(), repos.DB); err != nil {
				return err
			}

			if err := repository.Seed(cmd.Context(), repos.DB); err != nil {
				return err
			}

			slog.Info("tables populated successfully")

			return nil
		},
	}
}
