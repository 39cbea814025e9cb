package parser

import (
	"sort"
	"strings"
	"time"

	"github.com/ShafahmadxX69/BEISS/internal/gviz"
	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// Fixed layout of the invoice ("IN") sheet. Row 0 carries brand labels per
// column, row 1 the target export dates, row 4 the invoice numbers; data rows
// start at row 5. Columns before invFirstCol are the fixed leading block,
// invoice columns run from invFirstCol to the end of the row.
const (
	invBrandRow     = 0
	invDateRow      = 1
	invNumberRow    = 4
	invDataStartRow = 5
	invFirstCol     = 14

	invColPO     = 1
	invColType   = 2
	invColColor  = 3
	invColSize   = 4
	invColRework = 12
	invColQtyIn  = 13

	// The planner keeps "today" in the leading cell of the date header row;
	// wall clock is the fallback when it is absent or unparseable.
	todayRow = 1
	todayCol = 0
)

// invoiceCandidate is one invoice column holding demand against a row.
type invoiceCandidate struct {
	col  int
	qty  float64
	date *time.Time // nil means undated
}

// FindInvoiceStatus locates the invoice column matching brand+invoiceNumber
// and reconciles every row holding quantity against it. Inventory is modeled
// as a single shared inbound pool per row, consumed strictly in date order by
// competing invoice columns: an invoice is only READY when the pool left
// after all earlier-dated demands still covers its own quantity.
// No matching column is a valid empty result, not an error.
func FindInvoiceStatus(table *gviz.Table, brand, invoiceNumber string, now time.Time) []model.InvoiceLineResult {
	brand = strings.TrimSpace(brand)
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if table == nil || len(table.Rows) <= invDataStartRow || brand == "" || invoiceNumber == "" {
		return nil
	}

	target := findTargetColumn(table, brand, invoiceNumber)
	if target < 0 {
		return nil
	}

	today := resolveToday(table, now)
	targetDate := columnDate(table, target)

	var results []model.InvoiceLineResult
	for i := invDataStartRow; i < len(table.Rows); i++ {
		row := table.Rows[i]

		qty := row.Cell(target).Number()
		if qty <= 0 {
			continue
		}

		results = append(results, model.InvoiceLineResult{
			PO:        row.Cell(invColPO).Text(),
			Type:      row.Cell(invColType).Text(),
			Color:     row.Cell(invColColor).Text(),
			Size:      row.Cell(invColSize).Text(),
			Qty:       qty,
			Rework:    row.Cell(invColRework).Number(),
			QtyStatus: allocateRow(table, row, target),
			InvStatus: exportStatus(targetDate, today),
		})
	}
	return results
}

// findTargetColumn scans brand and invoice-number header rows jointly from
// the first invoice column; both labels must match, case-insensitively and
// trimmed. Returns -1 when no column matches.
func findTargetColumn(table *gviz.Table, brand, invoiceNumber string) int {
	brandRow := table.Rows[invBrandRow]
	numberRow := table.Rows[invNumberRow]

	width := len(brandRow.C)
	if len(numberRow.C) > width {
		width = len(numberRow.C)
	}

	for j := invFirstCol; j < width; j++ {
		b := strings.TrimSpace(brandRow.Cell(j).Text())
		n := strings.TrimSpace(numberRow.Cell(j).Text())
		if b == "" || n == "" {
			continue
		}
		if strings.EqualFold(b, brand) && strings.EqualFold(n, invoiceNumber) {
			return j
		}
	}
	return -1
}

// allocateRow walks the row's invoice columns in allocation order, draining
// the inbound pool with every dated demand queued ahead of the target.
// Undated demands never consume stock. If the walk somehow never reaches the
// target the data is inconsistent and the row is NOT READY.
func allocateRow(table *gviz.Table, row gviz.Row, target int) string {
	var candidates []invoiceCandidate
	for j := invFirstCol; j < len(row.C); j++ {
		q := row.Cell(j).Number()
		if q <= 0 {
			continue
		}
		candidates = append(candidates, invoiceCandidate{
			col:  j,
			qty:  q,
			date: columnDate(table, j),
		})
	}

	// Dated columns drain first in ascending date order; the column index
	// breaks date ties. Undated columns queue behind every dated one.
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		switch {
		case ca.date != nil && cb.date == nil:
			return true
		case ca.date == nil && cb.date != nil:
			return false
		case ca.date != nil && cb.date != nil && !ca.date.Equal(*cb.date):
			return ca.date.Before(*cb.date)
		default:
			return ca.col < cb.col
		}
	})

	available := row.Cell(invColQtyIn).Number()
	for _, cand := range candidates {
		if cand.col == target {
			if available >= cand.qty {
				return model.QtyReady
			}
			return model.QtyNotReady
		}
		if cand.date != nil {
			available -= cand.qty
		}
	}
	return model.QtyNotReady
}

// columnDate reads the target export date of one invoice column; nil means
// the column is undated.
func columnDate(table *gviz.Table, col int) *time.Time {
	cell := table.Rows[invDateRow].Cell(col)
	if cell == nil {
		return nil
	}
	if cell.V != nil {
		if d := NormalizeDate(cell.V); d != nil {
			return d
		}
	}
	if cell.F != "" {
		return NormalizeDate(cell.F)
	}
	return nil
}

func resolveToday(table *gviz.Table, now time.Time) time.Time {
	if len(table.Rows) > todayRow {
		if d := NormalizeDate(displayOrRaw(table.Rows[todayRow].Cell(todayCol))); d != nil {
			return *d
		}
	}
	return dayOf(now)
}

// exportStatus derives the free-text export timing for a row from the target
// column's date, at day granularity.
func exportStatus(date *time.Time, today time.Time) string {
	if date == nil {
		return "TBA"
	}
	d := dayOf(*date)
	switch {
	case d.After(today):
		return "Will be Export on " + d.Format("02 Jan 2006")
	case d.Equal(today):
		return "Will Export Today"
	default:
		return "Exported"
	}
}
