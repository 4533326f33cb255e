package driver

import (
	"net/http"

	"github.com/alorle/ace-launcher/internal/application"
)

// HealthHTTPHandler handles HTTP requests for health checks.
type HealthHTTPHandler struct {
	service *application.HealthService
}

// NewHealthHTTPHandler creates a new HTTP handler for health checks.
func NewHealthHTTPHandler(service *application.HealthService) *HealthHTTPHandler {
	return &HealthHTTPHandler{service: service}
}

// healthResponse represents the JSON response for health check endpoint.
type healthResponse struct {
	Status          string `json:"status"`
	DB              string `json:"db"`
	AceStreamEngine string `json:"acestream_engine"`
	Error           string `json:"error,omitempty"`
}

// ServeHTTP handles GET /health
func (h *HealthHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	status := h.service.Check(r.Context())

	resp := healthResponse{
		Status:          status.Status,
		DB:              status.DB.Status,
		AceStreamEngine: status.AceStreamEngine.Status,
	}
	if status.DB.Error != "" {
		resp.Error = status.DB.Error
	} else if status.AceStreamEngine.Error != "" {
		resp.Error = status.AceStreamEngine.Error
	}

	// A missing engine only disables playback, so it does not fail the probe.
	httpStatus := http.StatusOK
	if status.DB.Status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
