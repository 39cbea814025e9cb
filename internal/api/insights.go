package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateInsights builds the record set and asks the model for a summary.
// POST /api/insights
func (h *Handler) GenerateInsights(c *gin.Context) {
	records, err := h.svc.FetchProduction(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("insights fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed. Please ensure the Spreadsheet is shared."})
		return
	}

	summary, err := h.insights.ProductionSummary(c.Request.Context(), records)
	if err != nil {
		h.log.Error().Err(err).Msg("insights generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error connecting to AI advisor. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
