package main

import (
	"context"
	"time"

	"github.com/aussiebroadwan/technotes/internal/notes/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and exit",
	Long: `For SQLite this runs the embedded migrations. For MongoDB it creates the
collated unique indexes on usernames and note titles.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fatal("Invalid configuration", err)
		}
		logger := app.NewLogger(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		st, err := app.OpenStore(ctx, cfg)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer st.Close()

		if err := st.ApplyMigrations(ctx); err != nil {
			fatal("Failed to apply migrations", err)
		}

		logger.Info("migrations applied", "driver", cfg.StoreDriver)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
