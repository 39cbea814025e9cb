package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate production progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}

		stats, err := svc.ProductionStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Total Order:     %.0f\n", stats.TotalOrder)
		fmt.Printf("Total Produced:  %.0f\n", stats.TotalProduced)
		fmt.Printf("Total Remaining: %.0f\n", stats.TotalRemaining)
		fmt.Printf("Completion Rate: %.2f%%\n", stats.CompletionRate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
