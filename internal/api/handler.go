package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// FeedService is the core pipeline surface the API exposes.
type FeedService interface {
	FetchProduction(ctx context.Context) ([]model.ProductionRecord, error)
	ProductionStats(ctx context.Context) (model.Stats, error)
	CheckInvoice(ctx context.Context, brand, invoiceNumber string) ([]model.InvoiceLineResult, error)
}

// InsightsGenerator produces the narrative production summary.
type InsightsGenerator interface {
	ProductionSummary(ctx context.Context, records []model.ProductionRecord) (string, error)
}

// Handler holds the API dependencies.
type Handler struct {
	svc      FeedService
	insights InsightsGenerator
	cfg      *config.AppConfig
	log      zerolog.Logger
}

// NewHandler creates the API handler.
func NewHandler(svc FeedService, insights InsightsGenerator, cfg *config.AppConfig, log zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		insights: insights,
		cfg:      cfg,
		log:      log,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.GET("/production", h.GetProduction)
	router.GET("/stats", h.GetStats)

	router.GET("/invoice/check", h.CheckInvoice)

	router.POST("/insights", h.GenerateInsights)
	router.POST("/export", h.Export)
}
