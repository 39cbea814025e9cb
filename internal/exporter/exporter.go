// Package exporter writes the production record set into a report workbook
// for sharing outside the dashboard.
package exporter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ShafahmadxX69/BEISS/internal/model"
)

const reportSheet = "Production"

var reportHeaders = []string{
	"Production Date", "ULI PO", "BEIS PO", "WO Number", "Model Type",
	"Size", "Color", "Order Qty", "Produced Qty", "Remaining Qty", "Line",
}

// WriteProductionReport writes records and totals into a fresh workbook under
// outputDir and returns the written path.
func WriteProductionReport(records []model.ProductionRecord, stats model.Stats, outputDir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return "", fmt.Errorf("exporter: rename sheet: %w", err)
	}

	for i, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("exporter: header cell: %w", err)
		}
		f.SetCellValue(reportSheet, cell, h)
	}

	row := 2
	for _, r := range records {
		f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), r.ProductionDate)
		f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), r.UliPo)
		f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), r.BeisPo)
		f.SetCellValue(reportSheet, fmt.Sprintf("D%d", row), r.WoNumber)
		f.SetCellValue(reportSheet, fmt.Sprintf("E%d", row), r.ModelType)
		f.SetCellValue(reportSheet, fmt.Sprintf("F%d", row), r.Size)
		f.SetCellValue(reportSheet, fmt.Sprintf("G%d", row), r.Color)
		f.SetCellValue(reportSheet, fmt.Sprintf("H%d", row), r.OrderQty)
		f.SetCellValue(reportSheet, fmt.Sprintf("I%d", row), r.ProducedQty)
		f.SetCellValue(reportSheet, fmt.Sprintf("J%d", row), r.RemainingQty)
		f.SetCellValue(reportSheet, fmt.Sprintf("K%d", row), r.ExtractedLine)
		row++
	}

	// Totals block below the data area.
	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total Order")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), stats.TotalOrder)
	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total Produced")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), stats.TotalProduced)
	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total Remaining")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), stats.TotalRemaining)
	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Completion Rate")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.2f%%", stats.CompletionRate))

	filename := fmt.Sprintf("production_report_%s_%s.xlsx",
		time.Now().Format("20060102"), uuid.New().String()[:8])
	path := filepath.Join(outputDir, filename)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("exporter: save workbook: %w", err)
	}
	return path, nil
}
