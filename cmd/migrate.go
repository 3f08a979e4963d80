package cmd

import (
	"context"
	"log/slog"

	"restaurant-api/internal/database"
	"restaurant-api/internal/database/migrations"

	"github.com/spf13/cobra"
)

var migrateDown bool

func init() {
	MigrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back every migration instead of applying them")
	rootCmd.AddCommand(MigrateCmd)
}

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  "Apply the embedded schema migrations to the configured database, or roll them back with --down.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return migrate(cmd.Context(), migrateDown)
	},
}

func migrate(ctx context.Context, down bool) error {
	cfg, logCloser, err := bootstrap()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	pool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	if down {
		slog.Info("Rolling back migrations")
		err = migrations.Down(ctx, pool)
	} else {
		slog.Info("Applying migrations")
		err = migrations.Up(ctx, pool)
	}
	if err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		return err
	}
	slog.Info("Migrations completed successfully")
	return nil
}
