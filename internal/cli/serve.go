package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/logger"
	"github.com/ShafahmadxX69/BEISS/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for the dashboard UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		log := logger.New()

		srv := server.NewServer(cfg, log)
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info().Int("port", cfg.Server.Port).Msg("starting BEISS API")
		return srv.Run(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config.toml)")
	rootCmd.AddCommand(serveCmd)
}
