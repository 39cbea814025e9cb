// Package gviz fetches and decodes Google Visualization ("gviz") table
// payloads, the raw feed behind the shared production spreadsheet.
package gviz

import (
	"strconv"
	"strings"
)

// Cell is one positional cell of the feed. V is the native typed value
// (number, string, bool, or an encoded "Date(y,m,d)" token); F is the
// formatted display string. Either may be absent.
type Cell struct {
	V any    `json:"v"`
	F string `json:"f"`
}

// Row is an ordered sequence of cells; trailing cells may be missing and
// individual entries may be null.
type Row struct {
	C []*Cell `json:"c"`
}

// Table is the raw tabular payload for one named sheet.
type Table struct {
	Rows []Row `json:"rows"`
}

// Cell returns the cell at column col, or nil when the row is shorter or the
// feed emitted an explicit null there.
func (r Row) Cell(col int) *Cell {
	if col < 0 || col >= len(r.C) {
		return nil
	}
	return r.C[col]
}

// Defined reports whether the cell carries a raw value.
func (c *Cell) Defined() bool {
	return c != nil && c.V != nil
}

// Text returns the display text of the cell, preferring the formatted string
// over the raw value. The sheet's formatting may carry leading zeros or
// formula results that the raw value loses.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	if c.F != "" {
		return c.F
	}
	return ValueString(c.V)
}

// Number returns the cell's numeric value. Raw float values win; otherwise
// the formatted string is parsed tolerating thousands separators. Unparseable
// cells yield 0 so one bad cell never invalidates a row.
func (c *Cell) Number() float64 {
	if c == nil {
		return 0
	}
	if f, ok := c.V.(float64); ok {
		return f
	}
	if s, ok := c.V.(string); ok {
		if f, ok := parseNumber(s); ok {
			return f
		}
	}
	if f, ok := parseNumber(c.F); ok {
		return f
	}
	return 0
}

// ValueString renders a raw cell value the way the sheet displays it.
func ValueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
