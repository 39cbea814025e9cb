// Package parser turns raw feed tables into typed production and invoice
// records. All parsing is tolerant: a malformed cell degrades to a safe
// default instead of failing the row, because the sheet is hand-maintained.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ShafahmadxX69/BEISS/internal/gviz"
)

// ProductionCellInfo is the normalized form of a production-info cell.
type ProductionCellInfo struct {
	Date string
	Line string
}

var (
	// Encoded gviz date token, month is zero-based: Date(2026,0,26)
	gvizDateRe = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)
	// [Line 8] 26-01-2026 or 【Line 8】26/01/2026
	lineFullDateRe = regexp.MustCompile(`[\[【]Line\s*(\d+)[\]】]\s*(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	// [Line 8] 1/26 or 【Line 8】1-26, month/day with no year
	lineShortDateRe = regexp.MustCompile(`[\[【]Line\s*(\d+)[\]】]\s*(\d{1,2})[-/](\d{1,2})`)
)

// NormalizeProductionCell canonicalizes the heterogeneous formats seen in the
// production sheet's first column. Recognition order matters: the formats are
// mutually exclusive but the short-date pattern is a prefix of the full one.
// Unrecognized input passes through unchanged with line "N/A"; this never fails.
func NormalizeProductionCell(raw any, defaultYear int) ProductionCellInfo {
	str := strings.TrimSpace(gviz.ValueString(raw))
	if str == "" {
		return ProductionCellInfo{Date: "", Line: "N/A"}
	}

	if m := gvizDateRe.FindStringSubmatch(str); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return ProductionCellInfo{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, month+1, day),
			Line: "N/A",
		}
	}

	if m := lineFullDateRe.FindStringSubmatch(str); m != nil {
		day, _ := strconv.Atoi(m[2])
		month, _ := strconv.Atoi(m[3])
		return ProductionCellInfo{
			Date: fmt.Sprintf("%s-%02d-%02d", m[4], month, day),
			Line: "Line " + m[1],
		}
	}

	if m := lineShortDateRe.FindStringSubmatch(str); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return ProductionCellInfo{
			Date: fmt.Sprintf("%04d-%02d-%02d", defaultYear, month, day),
			Line: "Line " + m[1],
		}
	}

	return ProductionCellInfo{Date: str, Line: "N/A"}
}

// dateLayouts are tried in order by NormalizeDate for plain date strings.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// NormalizeDate parses a raw cell value into a calendar date, accepting the
// encoded gviz triple or a plain date string. It returns nil on failure, never
// an error: reconciliation treats nil as "undated". Time of day is discarded.
func NormalizeDate(raw any) *time.Time {
	str := strings.TrimSpace(gviz.ValueString(raw))
	if str == "" {
		return nil
	}

	if m := gvizDateRe.FindStringSubmatch(str); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		d := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			d := dayOf(t)
			return &d
		}
	}
	return nil
}

// dayOf truncates a timestamp to day granularity.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
