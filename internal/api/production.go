package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProduction returns the freshly built production record set.
// GET /api/production
func (h *Handler) GetProduction(c *gin.Context) {
	records, err := h.svc.FetchProduction(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("production fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed. Please ensure the Spreadsheet is shared."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// GetStats returns the aggregated production totals.
// GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.ProductionStats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("stats fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed. Please ensure the Spreadsheet is shared."})
		return
	}

	c.JSON(http.StatusOK, stats)
}
