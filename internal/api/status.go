package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse describes the configured feed.
type StatusResponse struct {
	SpreadsheetID   string `json:"spreadsheetId"`
	ProductionSheet string `json:"productionSheet"`
	InvoiceSheet    string `json:"invoiceSheet"`
	PlanningYear    int    `json:"planningYear"`
	ServerTime      string `json:"serverTime"`
}

// GetStatus reports the feed configuration.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		SpreadsheetID:   h.cfg.Feed.SpreadsheetID,
		ProductionSheet: h.cfg.Feed.ProductionSheet,
		InvoiceSheet:    h.cfg.Feed.InvoiceSheet,
		PlanningYear:    h.cfg.Feed.PlanningYear,
		ServerTime:      time.Now().Format(time.RFC3339),
	})
}
