package model

// Qty status values for an invoice line.
const (
	QtyReady    = "READY"
	QtyNotReady = "NOT READY"
)

// InvoiceLineResult is one reconciled row for a brand+invoice query.
// Qty is the row's quantity against the matched invoice column only.
type InvoiceLineResult struct {
	PO        string  `json:"po"`
	Type      string  `json:"type"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Qty       float64 `json:"qty"`
	Rework    float64 `json:"rework"`
	QtyStatus string  `json:"qtyStatus"` // READY / NOT READY
	InvStatus string  `json:"invStatus"` // export timing relative to today
}
