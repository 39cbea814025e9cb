package insights

import (
	"fmt"
	"strings"

	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// buildProductionPrompt digests the record set into the analysis prompt. Only
// the fields the summary needs are sent, not the full daily logs.
func buildProductionPrompt(records []model.ProductionRecord) string {
	var b strings.Builder

	b.WriteString("Analyze the following production schedule data for a manufacturing facility.\n")
	b.WriteString("Identify any critical delays, potential bottlenecks (Work Orders with low progress),\n")
	b.WriteString("and suggest optimizations for the production line based on these specific items:\n\n")

	for _, r := range records {
		progress := 0.0
		if r.OrderQty > 0 {
			progress = r.ProducedQty / r.OrderQty * 100
		}
		b.WriteString(fmt.Sprintf("- wo: %s, model: %s, progress: %.1f%%, remaining: %.0f\n",
			r.WoNumber, r.ModelType, progress, r.RemainingQty))
	}

	b.WriteString("\nProvide a professional summary suitable for a PPIC (Production Planning and Inventory Control) manager.\n")
	b.WriteString("Use clear bullet points and a tone of operational excellence.\n")

	return b.String()
}
