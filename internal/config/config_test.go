package config

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 8280 {
		t.Fatalf("port want=8280 got=%d", cfg.Server.Port)
	}
	if cfg.Feed.ProductionSheet != "Sheet" || cfg.Feed.InvoiceSheet != "IN" {
		t.Fatalf("unexpected sheet names: %+v", cfg.Feed)
	}
	if cfg.Feed.PlanningYear != 2026 {
		t.Fatalf("planning year want=2026 got=%d", cfg.Feed.PlanningYear)
	}
	if got := cfg.Feed.Timeout(); got != 30*time.Second {
		t.Fatalf("timeout want=30s got=%v", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BEISS_SPREADSHEET_ID", "override-sheet-id")
	t.Setenv("BEISS_GEMINI_MODEL", "gemini-override")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if cfg.Feed.SpreadsheetID != "override-sheet-id" {
		t.Fatalf("spreadsheet id not overridden: %s", cfg.Feed.SpreadsheetID)
	}
	if cfg.Insights.Model != "gemini-override" {
		t.Fatalf("model not overridden: %s", cfg.Insights.Model)
	}
}

func TestConfigUnmarshal(t *testing.T) {
	t.Parallel()

	src := `
[server]
port = 9000
dev_mode = true

[feed]
spreadsheet_id = "abc"
planning_year = 2027
`
	cfg := DefaultConfig()
	if err := toml.Unmarshal([]byte(src), cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Server.Port != 9000 || !cfg.Server.DevMode {
		t.Fatalf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Feed.SpreadsheetID != "abc" || cfg.Feed.PlanningYear != 2027 {
		t.Fatalf("feed section not applied: %+v", cfg.Feed)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Feed.InvoiceSheet != "IN" {
		t.Fatalf("invoice sheet default lost: %s", cfg.Feed.InvoiceSheet)
	}
}
