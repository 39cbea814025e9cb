package gviz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://docs.google.com/spreadsheets/d"

// Client fetches raw tables for one spreadsheet. A fetch is a single
// blocking call; retry and re-fetch policy belongs to the caller.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
}

// NewClient creates a feed client for the given spreadsheet.
func NewClient(spreadsheetID string, timeout time.Duration) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
	}
}

// WithBaseURL overrides the endpoint, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// FetchTable retrieves the raw table for one named sheet.
func (c *Client) FetchTable(ctx context.Context, sheet string) (*Table, error) {
	endpoint := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&sheet=%s",
		c.baseURL, c.spreadsheetID, url.QueryEscape(sheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gviz: build request for sheet %q: %w", sheet, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gviz: fetch sheet %q: %w", sheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gviz: fetch sheet %q: unexpected status %s", sheet, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gviz: read sheet %q: %w", sheet, err)
	}

	table, err := DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("gviz: decode sheet %q: %w", sheet, err)
	}
	return table, nil
}

// DecodeResponse strips the JSONP wrapper
// (google.visualization.Query.setResponse({...})) and decodes the table.
func DecodeResponse(body []byte) (*Table, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("malformed envelope: no JSON object found")
	}

	var envelope struct {
		Status string `json:"status"`
		Table  Table  `json:"table"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &envelope); err != nil {
		return nil, fmt.Errorf("malformed envelope: %w", err)
	}
	if envelope.Status == "error" {
		return nil, fmt.Errorf("feed returned error status")
	}
	return &envelope.Table, nil
}
