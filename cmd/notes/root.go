package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/technotes/internal/notes/app"
	"github.com/spf13/cobra"
)

var (
	configFile string
	port       int
	driver     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Notes and user management service",
	Long: `notes serves the notes and users API backed by SQLite or MongoDB.
Configuration is read from an optional YAML file, a .env file and the environment.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML config file (default $CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Store driver: sqlite or mongo (overrides STORE_DRIVER)")
}

// loadConfig resolves the configuration and applies flags the user set.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig(configFile)
	if err != nil {
		return app.Config{}, err
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = port
	}
	if cmd.Flags().Changed("driver") {
		cfg.StoreDriver = driver
	}

	return cfg, cfg.Validate()
}
