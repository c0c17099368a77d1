package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/db"
	"github.com/jeffoo713/lightBnB/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start an HTTP server exposing the store as a JSON API. Stops on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Server.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			database, err := db.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer closeDB(database)

			return web.NewServer(database).ListenAndServe(ctx, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 3000, "port to listen on (default from config)")

	return cmd
}
