// Package importer reads an offline .xlsx snapshot of the shared spreadsheet
// into the same raw-table shape the live feed produces, so both pipelines run
// without network access.
package importer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ShafahmadxX69/BEISS/internal/gviz"
)

// Source serves raw tables from one workbook file.
type Source struct {
	path string
}

// NewSource creates a snapshot source for the given workbook path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// FetchTable reads one sheet of the workbook. Raw cell values become the
// typed value, the rendered string becomes the formatted value, matching the
// live feed's cell encoding.
func (s *Source) FetchTable(ctx context.Context, sheet string) (*gviz.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet %q raw values: %w", sheet, err)
	}

	table := &gviz.Table{Rows: make([]gviz.Row, len(formatted))}
	for i := range formatted {
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		table.Rows[i] = buildRow(formatted[i], rawRow)
	}
	return table, nil
}

func buildRow(formatted, raw []string) gviz.Row {
	width := len(formatted)
	if len(raw) > width {
		width = len(raw)
	}

	row := gviz.Row{C: make([]*gviz.Cell, width)}
	for j := 0; j < width; j++ {
		var fv, rv string
		if j < len(formatted) {
			fv = formatted[j]
		}
		if j < len(raw) {
			rv = raw[j]
		}
		if fv == "" && rv == "" {
			continue // absent cell stays nil, same as the feed
		}
		row.C[j] = &gviz.Cell{V: rawCellValue(rv), F: fv}
	}
	return row
}

// rawCellValue types a raw xlsx string the way the feed would: numbers stay
// numbers, everything else is a string, empty means no raw value.
func rawCellValue(rv string) any {
	if rv == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(rv, 64); err == nil {
		return n
	}
	return rv
}
