package driven

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alorle/ace-launcher/internal/port/driven"
)

// AceStreamHTTPAdapter implements the AceStreamEngine port using HTTP calls
// to the AceStream Engine API.
type AceStreamHTTPAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAceStreamHTTPAdapter creates a new HTTP adapter for AceStream Engine.
// baseURL should point to the AceStream Engine HTTP API (e.g., http://127.0.0.1:6878).
func NewAceStreamHTTPAdapter(baseURL string, logger *slog.Logger) *AceStreamHTTPAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &AceStreamHTTPAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Ping checks if the AceStream Engine is reachable.
func (a *AceStreamHTTPAdapter) Ping(ctx context.Context) error {
	// Try to access the manifest endpoint as a health check
	reqURL := fmt.Sprintf("%s/ace/manifest.json", a.baseURL)

	a.logger.Debug("pinging acestream engine", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("acestream engine not reachable", "url", reqURL, "error", err)
		return fmt.Errorf("acestream engine not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("acestream engine returned error on ping", "url", reqURL, "status", resp.StatusCode)
		return fmt.Errorf("acestream engine returned status %d", resp.StatusCode)
	}

	a.logger.Debug("acestream engine is healthy", "url", reqURL)

	return nil
}

// Ensure AceStreamHTTPAdapter implements the driven.AceStreamEngine interface
var _ driven.AceStreamEngine = (*AceStreamHTTPAdapter)(nil)
