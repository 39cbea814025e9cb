package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/exporter"
	"github.com/ShafahmadxX69/BEISS/internal/parser"
)

// Export writes the production report workbook and returns its location.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	records, err := h.svc.FetchProduction(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("export fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed. Please ensure the Spreadsheet is shared."})
		return
	}

	outputDir, err := config.EnsureExportDir(h.cfg)
	if err != nil {
		h.log.Error().Err(err).Msg("export dir creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare export directory"})
		return
	}

	path, err := exporter.WriteProductionReport(records, parser.Aggregate(records), outputDir)
	if err != nil {
		h.log.Error().Err(err).Msg("export write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":     path,
		"filename": filepath.Base(path),
		"records":  len(records),
	})
}
