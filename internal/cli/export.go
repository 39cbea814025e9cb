package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/exporter"
	"github.com/ShafahmadxX69/BEISS/internal/parser"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the production report workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := buildService()
		if err != nil {
			return err
		}

		records, err := svc.FetchProduction(cmd.Context())
		if err != nil {
			return err
		}

		outputDir, err := config.EnsureExportDir(cfg)
		if err != nil {
			return fmt.Errorf("prepare export directory: %w", err)
		}

		path, err := exporter.WriteProductionReport(records, parser.Aggregate(records), outputDir)
		if err != nil {
			return err
		}

		fmt.Printf("Report written: %s (%d records)\n", path, len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
