package model

// DailyHeader describes one dynamic per-day column discovered from the
// production sheet's three header rows.
type DailyHeader struct {
	Date  string `json:"date"`
	Line  string `json:"line"`
	Shift string `json:"shift"`
}

// DailyLog is one day's output for a single work order.
type DailyLog struct {
	Date  string  `json:"date"`
	Line  string  `json:"line"`
	Shift string  `json:"shift"`
	Qty   float64 `json:"qty"`
}

// ProductionRecord is one work-order line of the production sheet.
type ProductionRecord struct {
	ProductionDate string `json:"productionDate"` // canonical date, "on producing", or raw passthrough
	UliPo          string `json:"uliPo"`
	BeisPo         string `json:"beisPo"`
	WoNumber       string `json:"woNumber"`
	ModelType      string `json:"modelType"`
	Size           string `json:"size"`
	Color          string `json:"color"`

	OrderQty    float64 `json:"orderQty"`
	ProducedQty float64 `json:"producedQty"`
	// RemainingQty is reported by the sheet, not derived from OrderQty-ProducedQty.
	// The two may disagree and must not be reconciled here.
	RemainingQty float64 `json:"remainingQty"`

	DailyProduction []DailyLog `json:"dailyProduction"`
	ExtractedLine   string     `json:"extractedLine"`
}

// Stats aggregates a production record set.
type Stats struct {
	TotalOrder     float64 `json:"totalOrder"`
	TotalProduced  float64 `json:"totalProduced"`
	TotalRemaining float64 `json:"totalRemaining"`
	CompletionRate float64 `json:"completionRate"`
}
