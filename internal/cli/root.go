// Package cli defines the beiss command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/feed"
	"github.com/ShafahmadxX69/BEISS/internal/gviz"
	"github.com/ShafahmadxX69/BEISS/internal/importer"
	"github.com/ShafahmadxX69/BEISS/internal/logger"
)

// snapshotPath switches every command from the live feed to an offline .xlsx
// snapshot of the same spreadsheet.
var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "beiss",
	Short: "BEISS - production monitoring and invoice reconciliation for the BEIS feed",
	Long: `BEISS ingests the shared production spreadsheet and answers two questions:
how far along each work order is, and whether an invoice can ship given the
inventory already earmarked for older invoices on the same rows.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "",
		"path to an offline .xlsx snapshot (default: live feed)")
}

// buildService loads config and wires the feed service over the live client
// or, when --snapshot is set, the workbook importer.
func buildService() (*feed.Service, *config.AppConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New()

	var fetcher feed.Fetcher
	if snapshotPath != "" {
		fetcher = importer.NewSource(snapshotPath)
	} else {
		fetcher = gviz.NewClient(cfg.Feed.SpreadsheetID, cfg.Feed.Timeout())
	}

	return feed.NewService(fetcher, cfg.Feed, log), cfg, nil
}
