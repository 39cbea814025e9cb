// Package feed wires a table fetcher to the parsing layer. Every invocation
// is stateless: fetch one raw table, transform it, return typed records.
package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/gviz"
	"github.com/ShafahmadxX69/BEISS/internal/model"
	"github.com/ShafahmadxX69/BEISS/internal/parser"
)

// Fetcher retrieves the raw table for a named sheet. Implemented by the gviz
// HTTP client and by the offline xlsx snapshot importer.
type Fetcher interface {
	FetchTable(ctx context.Context, sheet string) (*gviz.Table, error)
}

// Service runs the two fetch-and-transform pipelines.
type Service struct {
	fetcher Fetcher
	cfg     config.FeedConfig
	log     zerolog.Logger
}

// NewService creates a feed service over the given fetcher.
func NewService(fetcher Fetcher, cfg config.FeedConfig, log zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cfg:     cfg,
		log:     log,
	}
}

// FetchProduction fetches the production sheet and builds the record set.
// Fetch failures surface verbatim; no retry happens here.
func (s *Service) FetchProduction(ctx context.Context) ([]model.ProductionRecord, error) {
	runID := uuid.New().String()
	started := time.Now()

	table, err := s.fetcher.FetchTable(ctx, s.cfg.ProductionSheet)
	if err != nil {
		s.log.Error().Err(err).Str("run_id", runID).Str("sheet", s.cfg.ProductionSheet).
			Msg("production fetch failed")
		return nil, err
	}

	records := parser.BuildProductionRecords(table, s.cfg.PlanningYear)
	s.log.Info().Str("run_id", runID).Int("records", len(records)).
		Dur("duration", time.Since(started)).Msg("production fetch complete")
	return records, nil
}

// ProductionStats fetches the production sheet and aggregates it.
func (s *Service) ProductionStats(ctx context.Context) (model.Stats, error) {
	records, err := s.FetchProduction(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return parser.Aggregate(records), nil
}

// CheckInvoice fetches the invoice sheet and reconciles the rows of the
// matching brand+invoice column. An unknown pair yields an empty result.
func (s *Service) CheckInvoice(ctx context.Context, brand, invoiceNumber string) ([]model.InvoiceLineResult, error) {
	runID := uuid.New().String()
	started := time.Now()

	table, err := s.fetcher.FetchTable(ctx, s.cfg.InvoiceSheet)
	if err != nil {
		s.log.Error().Err(err).Str("run_id", runID).Str("sheet", s.cfg.InvoiceSheet).
			Msg("invoice fetch failed")
		return nil, err
	}

	results := parser.FindInvoiceStatus(table, brand, invoiceNumber, time.Now())
	s.log.Info().Str("run_id", runID).Str("brand", brand).Str("invoice", invoiceNumber).
		Int("rows", len(results)).Dur("duration", time.Since(started)).Msg("invoice check complete")
	return results, nil
}
