package parser

import (
	"testing"

	"github.com/ShafahmadxX69/BEISS/internal/gviz"
)

func cellV(v any) *gviz.Cell { return &gviz.Cell{V: v} }

func cellF(f string) *gviz.Cell { return &gviz.Cell{F: f} }

func rowOf(width int, at map[int]*gviz.Cell) gviz.Row {
	r := gviz.Row{C: make([]*gviz.Cell, width)}
	for i, c := range at {
		r.C[i] = c
	}
	return r
}

func productionFixture() *gviz.Table {
	return &gviz.Table{Rows: []gviz.Row{
		// Row 0: date info for the dynamic block starting at column 12.
		rowOf(14, map[int]*gviz.Cell{
			12: cellV("Date(2026,0,26)"),
			13: cellV("【Line 2】1/27"),
		}),
		// Row 1: line labels; column 13 falls back to the parsed line.
		rowOf(14, map[int]*gviz.Cell{
			12: cellV("Line 1"),
		}),
		// Row 2: shift labels.
		rowOf(14, map[int]*gviz.Cell{
			12: cellV("Day"),
			13: cellV("Night"),
		}),
		// Row 3: spacer.
		{},
		// Row 4: complete work order.
		rowOf(14, map[int]*gviz.Cell{
			0:  cellF("[Line 8] 26-01-2026"),
			1:  cellV("ULI-01"),
			2:  cellV("BP-02"),
			3:  cellV("WO-123"),
			5:  cellV("Backpack"),
			6:  cellV("M"),
			8:  cellV("Black"),
			9:  cellF("1,200"),
			10: cellV(350.0),
			11: cellV(850.0),
			12: cellV(200.0),
		}),
		// Row 5: no work-order number, must be dropped.
		rowOf(14, map[int]*gviz.Cell{
			1: cellV("ULI-02"),
			9: cellV(10.0),
		}),
		// Row 6: identity present only as formatted text with leading zeros.
		rowOf(14, map[int]*gviz.Cell{
			3:  cellF("00456"),
			13: cellV(75.0),
		}),
	}}
}

func TestBuildProductionRecords_TableTooShort(t *testing.T) {
	t.Parallel()

	table := &gviz.Table{Rows: make([]gviz.Row, 4)}
	if got := BuildProductionRecords(table, 2026); len(got) != 0 {
		t.Fatalf("want empty set got=%d records", len(got))
	}
	if got := BuildProductionRecords(nil, 2026); len(got) != 0 {
		t.Fatalf("want empty set for nil table got=%d records", len(got))
	}
}

func TestBuildProductionRecords_Fields(t *testing.T) {
	t.Parallel()

	records := BuildProductionRecords(productionFixture(), 2026)
	if len(records) != 2 {
		t.Fatalf("want 2 records got=%d", len(records))
	}

	r := records[0]
	if r.WoNumber != "WO-123" {
		t.Fatalf("wo want=WO-123 got=%s", r.WoNumber)
	}
	if r.ProductionDate != "2026-01-26" || r.ExtractedLine != "Line 8" {
		t.Fatalf("unexpected production info: %s / %s", r.ProductionDate, r.ExtractedLine)
	}
	if r.UliPo != "ULI-01" || r.BeisPo != "BP-02" || r.ModelType != "Backpack" {
		t.Fatalf("unexpected descriptive fields: %+v", r)
	}
	if r.Size != "M" || r.Color != "Black" {
		t.Fatalf("unexpected size/color: %s / %s", r.Size, r.Color)
	}
	if r.OrderQty != 1200 {
		t.Fatalf("order qty with thousands separator want=1200 got=%v", r.OrderQty)
	}
	if r.ProducedQty != 350 || r.RemainingQty != 850 {
		t.Fatalf("unexpected quantities: %v / %v", r.ProducedQty, r.RemainingQty)
	}

	// Second record keeps the sheet's leading zeros via the formatted value
	// and defaults absent text fields.
	r = records[1]
	if r.WoNumber != "00456" {
		t.Fatalf("wo want=00456 got=%s", r.WoNumber)
	}
	if r.UliPo != "-" || r.Color != "-" {
		t.Fatalf("absent fields must default to '-': %+v", r)
	}
}

func TestBuildProductionRecords_DailyHeadersAndLog(t *testing.T) {
	t.Parallel()

	records := BuildProductionRecords(productionFixture(), 2026)
	if len(records) != 2 {
		t.Fatalf("want 2 records got=%d", len(records))
	}

	headers := DiscoverDailyHeaders(productionFixture(), 2026)
	if len(headers) != 2 {
		t.Fatalf("want 2 daily headers got=%d", len(headers))
	}
	if headers[0].Date != "2026-01-26" || headers[0].Line != "Line 1" || headers[0].Shift != "Day" {
		t.Fatalf("unexpected header 0: %+v", headers[0])
	}
	// No explicit line label on column 13: the bracketed marker wins.
	if headers[1].Date != "2026-01-27" || headers[1].Line != "Line 2" || headers[1].Shift != "Night" {
		t.Fatalf("unexpected header 1: %+v", headers[1])
	}

	// First record logged only on the first daily column.
	daily := records[0].DailyProduction
	if len(daily) != 1 {
		t.Fatalf("want 1 daily entry got=%d", len(daily))
	}
	if daily[0].Date != "2026-01-26" || daily[0].Qty != 200 {
		t.Fatalf("unexpected daily entry: %+v", daily[0])
	}

	// Second record logged only on the second daily column.
	daily = records[1].DailyProduction
	if len(daily) != 1 || daily[0].Date != "2026-01-27" || daily[0].Qty != 75 {
		t.Fatalf("unexpected daily entry: %+v", daily)
	}
}

func TestBuildProductionRecords_RemainingNotDerived(t *testing.T) {
	t.Parallel()

	// The sheet reports remaining=999 although order-produced is 850. The
	// builder must carry the reported value untouched.
	table := productionFixture()
	table.Rows[4].C[11] = cellV(999.0)

	records := BuildProductionRecords(table, 2026)
	if records[0].RemainingQty != 999 {
		t.Fatalf("remaining must not be reconciled: want=999 got=%v", records[0].RemainingQty)
	}
}
