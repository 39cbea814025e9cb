package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/model"
)

type fakeFeed struct {
	records []model.ProductionRecord
	results []model.InvoiceLineResult
	err     error
}

func (f *fakeFeed) FetchProduction(ctx context.Context) ([]model.ProductionRecord, error) {
	return f.records, f.err
}

func (f *fakeFeed) ProductionStats(ctx context.Context) (model.Stats, error) {
	if f.err != nil {
		return model.Stats{}, f.err
	}
	return model.Stats{TotalOrder: 100, TotalProduced: 50, TotalRemaining: 50, CompletionRate: 50}, nil
}

func (f *fakeFeed) CheckInvoice(ctx context.Context, brand, invoiceNumber string) ([]model.InvoiceLineResult, error) {
	return f.results, f.err
}

type fakeInsights struct{}

func (fakeInsights) ProductionSummary(ctx context.Context, records []model.ProductionRecord) (string, error) {
	return "summary", nil
}

func newTestRouter(svc FeedService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc, fakeInsights{}, config.DefaultConfig(), zerolog.Nop())
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{})
	w := doRequest(router, http.MethodGet, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var stats model.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if stats.CompletionRate != 50 {
		t.Fatalf("completion rate want=50 got=%v", stats.CompletionRate)
	}
}

func TestGetProduction_FetchErrorIsBadGateway(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{err: fmt.Errorf("feed unreachable")})
	w := doRequest(router, http.MethodGet, "/api/production")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status want=502 got=%d", w.Code)
	}
}

func TestCheckInvoice_RequiresParams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{})
	w := doRequest(router, http.MethodGet, "/api/invoice/check?brand=BEIS")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want=400 got=%d", w.Code)
	}
}

func TestCheckInvoice_EmptyResultIsOK(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{})
	w := doRequest(router, http.MethodGet, "/api/invoice/check?brand=BEIS&invoice=INV-404")
	if w.Code != http.StatusOK {
		t.Fatalf("not-found must be 200, got=%d", w.Code)
	}

	var body struct {
		Results []model.InvoiceLineResult `json:"results"`
		Count   int                       `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Results == nil || body.Count != 0 {
		t.Fatalf("want empty array got=%+v", body)
	}
}

func TestCheckInvoice_TotalQty(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{results: []model.InvoiceLineResult{
		{PO: "PO-1", Qty: 50, QtyStatus: model.QtyReady},
		{PO: "PO-2", Qty: 25, QtyStatus: model.QtyNotReady},
	}})
	w := doRequest(router, http.MethodGet, "/api/invoice/check?brand=BEIS&invoice=INV-001")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var body struct {
		TotalQty float64 `json:"totalQty"`
		Count    int     `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.TotalQty != 75 || body.Count != 2 {
		t.Fatalf("unexpected totals: %+v", body)
	}
}

func TestGenerateInsights(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeFeed{records: []model.ProductionRecord{{WoNumber: "WO-1"}}})
	w := doRequest(router, http.MethodPost, "/api/insights")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Summary != "summary" {
		t.Fatalf("summary want=summary got=%q", body.Summary)
	}
}
