package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodbook-backend/internal/app"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(cmd.Context(), logger, pool, migrations.FS); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), map[string]string{"status": "ok"})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func requirePostgres(cfg *config.Config) error {
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("storage.driver must be %q for this command (got %q)", config.StoragePostgres, cfg.Storage.Driver)
	}
	return nil
}
