// Package cli defines the cobra command tree for lbnb.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/config"
	"github.com/jeffoo713/lightBnB/internal/db"
	"github.com/jeffoo713/lightBnB/internal/logging"
)

var (
	flagFormat string
	flagConfig string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lbnb",
		Short:         "Query and manage the LightBnB store",
		Long:          "A tool for the LightBnB rental store. Look up users, list reservations, search and add properties, read reviews, or serve the JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagFormat != "text" && flagFormat != "json" {
				return fmt.Errorf("invalid --format %q (use text or json)", flagFormat)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/lbnb/config.yaml)")

	root.AddCommand(
		newUserCmd(),
		newReservationsCmd(),
		newPropertiesCmd(),
		newReviewsCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads configuration from --config, .env and the environment,
// and installs the logger it describes.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logging.Setup(cfg.Log.Dev)
	return cfg, nil
}

// openDB opens the configured store.
func openDB(ctx context.Context) (*sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return db.Open(ctx, cfg.DB)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the store, logging any error to stderr.
func closeDB(database *sqlx.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
