package main

import (
	"github.com/aussiebroadwan/technotes/internal/notes/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Apply pending migrations, then serve the API until SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fatal("Invalid configuration", err)
		}

		application, err := app.New(cfg)
		if err != nil {
			fatal("Failed to initialize application", err)
		}

		if err := application.Run(); err != nil {
			fatal("Application error", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
