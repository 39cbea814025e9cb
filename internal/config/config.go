package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Feed     FeedConfig     `toml:"feed"`
	Insights InsightsConfig `toml:"insights"`
	Export   ExportConfig   `toml:"export"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// FeedConfig names the upstream spreadsheet and its two source sheets.
type FeedConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	ProductionSheet string `toml:"production_sheet"`
	InvoiceSheet    string `toml:"invoice_sheet"`
	// PlanningYear is assumed for year-less short dates in the feed.
	PlanningYear   int `toml:"planning_year"`
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// InsightsConfig configures the narrative summary model.
type InsightsConfig struct {
	Model string `toml:"model"`
}

// ExportConfig configures report workbook output.
type ExportConfig struct {
	OutputDir string `toml:"output_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8280,
			DevMode: false,
		},
		Feed: FeedConfig{
			SpreadsheetID:   "1-4Bd7MeYXMkkTWgkIbzrsn_eNz3Dzw5FgTxC7lFgsB0",
			ProductionSheet: "Sheet",
			InvoiceSheet:    "IN",
			PlanningYear:    2026,
			TimeoutSeconds:  30,
		},
		Insights: InsightsConfig{
			Model: "gemini-3-flash-preview",
		},
		Export: ExportConfig{
			OutputDir: "exports",
		},
	}
}

// Timeout returns the feed fetch timeout as a duration.
func (f FeedConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory. A missing
// file is not an error; defaults apply. Environment variables override the
// file for deployment-specific values.
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("BEISS_SPREADSHEET_ID"); v != "" {
		cfg.Feed.SpreadsheetID = v
	}
	if v := os.Getenv("BEISS_GEMINI_MODEL"); v != "" {
		cfg.Insights.Model = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(cfg *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// EnsureExportDir creates the export output directory next to the executable.
func EnsureExportDir(cfg *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dir := filepath.Join(exeDir, cfg.Export.OutputDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
