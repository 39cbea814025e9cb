package parser

import (
	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// Aggregate folds a record set into dashboard totals. Order-independent;
// an empty set yields all zeros.
func Aggregate(records []model.ProductionRecord) model.Stats {
	var stats model.Stats
	for _, r := range records {
		stats.TotalOrder += r.OrderQty
		stats.TotalProduced += r.ProducedQty
		stats.TotalRemaining += r.RemainingQty
	}
	if stats.TotalOrder > 0 {
		stats.CompletionRate = stats.TotalProduced / stats.TotalOrder * 100
	}
	return stats
}
