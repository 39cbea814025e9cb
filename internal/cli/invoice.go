package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice <brand> <invoice-number>",
	Short: "Check whether an invoice's rows are covered by inbound inventory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}

		results, err := svc.CheckInvoice(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No invoice records found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PO\tTYPE\tCOLOR\tSIZE\tQTY\tREWORK\tQTY STATUS\tEXPORT STATUS")
		var total float64
		for _, r := range results {
			total += r.Qty
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%.0f\t%s\t%s\n",
				r.PO, r.Type, r.Color, r.Size, r.Qty, r.Rework, r.QtyStatus, r.InvStatus)
		}
		w.Flush()
		fmt.Printf("\n%d rows, total qty %.0f\n", len(results), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
}
