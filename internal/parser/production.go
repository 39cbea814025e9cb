package parser

import (
	"github.com/ShafahmadxX69/BEISS/internal/gviz"
	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// Fixed layout of the production sheet. The leading block is positional; the
// per-day columns from dailyHeaderStartCol onward grow as days are appended
// and are discovered from the header rows on every fetch.
const (
	colProductionInfo = 0
	colUliPo          = 1
	colBeisPo         = 2
	colWoNumber       = 3
	colModelType      = 5
	colSize           = 6
	colColor          = 8
	colOrderQty       = 9
	colProducedQty    = 10
	colRemainingQty   = 11

	dailyHeaderStartCol    = 12
	productionDataStartRow = 4
	minProductionRows      = 5
)

// DiscoverDailyHeaders reads the three header rows (date info, line label,
// shift label) and returns one descriptor per dynamic daily column. The
// column count follows the length of the first header row.
func DiscoverDailyHeaders(table *gviz.Table, defaultYear int) []model.DailyHeader {
	if len(table.Rows) < 3 {
		return nil
	}
	dateRow, lineRow, shiftRow := table.Rows[0], table.Rows[1], table.Rows[2]

	var headers []model.DailyHeader
	for i := dailyHeaderStartCol; i < len(dateRow.C); i++ {
		info := NormalizeProductionCell(rawValue(dateRow.Cell(i)), defaultYear)

		line := gviz.ValueString(rawValue(lineRow.Cell(i)))
		if line == "" {
			line = info.Line
		}

		headers = append(headers, model.DailyHeader{
			Date:  info.Date,
			Line:  line,
			Shift: gviz.ValueString(rawValue(shiftRow.Cell(i))),
		})
	}
	return headers
}

// BuildProductionRecords maps the raw production table into typed records.
// A table shorter than the header+data preamble is an unready feed, a valid
// state yielding no records. Rows without a work-order number are dropped.
func BuildProductionRecords(table *gviz.Table, defaultYear int) []model.ProductionRecord {
	if table == nil || len(table.Rows) < minProductionRows {
		return nil
	}

	headers := DiscoverDailyHeaders(table, defaultYear)

	var records []model.ProductionRecord
	for i := productionDataStartRow; i < len(table.Rows); i++ {
		row := table.Rows[i]

		wo := row.Cell(colWoNumber)
		if wo == nil || (wo.F == "" && wo.V == nil) {
			continue
		}

		info := NormalizeProductionCell(displayOrRaw(row.Cell(colProductionInfo)), defaultYear)

		var daily []model.DailyLog
		for idx, h := range headers {
			cell := row.Cell(dailyHeaderStartCol + idx)
			if !cell.Defined() {
				continue
			}
			daily = append(daily, model.DailyLog{
				Date:  h.Date,
				Line:  h.Line,
				Shift: h.Shift,
				Qty:   cell.Number(),
			})
		}

		records = append(records, model.ProductionRecord{
			ProductionDate:  info.Date,
			UliPo:           textOr(row.Cell(colUliPo), "-"),
			BeisPo:          textOr(row.Cell(colBeisPo), "-"),
			WoNumber:        textOr(wo, "-"),
			ModelType:       textOr(row.Cell(colModelType), "-"),
			Size:            textOr(row.Cell(colSize), "-"),
			Color:           textOr(row.Cell(colColor), "-"),
			OrderQty:        row.Cell(colOrderQty).Number(),
			ProducedQty:     row.Cell(colProducedQty).Number(),
			RemainingQty:    row.Cell(colRemainingQty).Number(),
			DailyProduction: daily,
			ExtractedLine:   info.Line,
		})
	}

	return records
}

func rawValue(c *gviz.Cell) any {
	if c == nil {
		return nil
	}
	return c.V
}

// displayOrRaw prefers the formatted string over the raw value, keeping the
// sheet's own rendering of dates and formulas.
func displayOrRaw(c *gviz.Cell) any {
	if c == nil {
		return nil
	}
	if c.F != "" {
		return c.F
	}
	return c.V
}

func textOr(c *gviz.Cell, fallback string) string {
	if s := c.Text(); s != "" {
		return s
	}
	return fallback
}
