package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// CheckInvoice reconciles the rows of one brand+invoice column.
// GET /api/invoice/check?brand=BEIS&invoice=INV-12345
func (h *Handler) CheckInvoice(c *gin.Context) {
	brand := strings.TrimSpace(c.Query("brand"))
	invoice := strings.TrimSpace(c.Query("invoice"))
	if brand == "" || invoice == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand and invoice are required"})
		return
	}

	results, err := h.svc.CheckInvoice(c.Request.Context(), brand, invoice)
	if err != nil {
		h.log.Error().Err(err).Str("brand", brand).Str("invoice", invoice).Msg("invoice check failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed. Please ensure the Spreadsheet is shared."})
		return
	}

	var totalQty float64
	for _, r := range results {
		totalQty += r.Qty
	}

	// Not found is a valid empty result set, not an error.
	if results == nil {
		results = []model.InvoiceLineResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"count":    len(results),
		"totalQty": totalQty,
	})
}
