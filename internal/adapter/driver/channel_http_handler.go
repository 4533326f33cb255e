package driver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/channel"
)

// ChannelHTTPHandler handles HTTP requests for the channel catalog.
type ChannelHTTPHandler struct {
	service *application.CatalogService
}

// NewChannelHTTPHandler creates a new HTTP handler for channels.
func NewChannelHTTPHandler(service *application.CatalogService) *ChannelHTTPHandler {
	return &ChannelHTTPHandler{service: service}
}

// errorResponse represents a JSON error response.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// channelResponse represents a channel in JSON format.
type channelResponse struct {
	Name     string `json:"name"`
	StreamID string `json:"streamId"`
	Icon     string `json:"icon"`
}

// catalogResponse represents the current catalog in JSON format.
type catalogResponse struct {
	Source   string            `json:"source"`
	BuiltAt  string            `json:"builtAt,omitempty"`
	Total    int               `json:"total"`
	Channels []channelResponse `json:"channels"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeCatalogError maps a catalog build failure to a response.
func writeCatalogError(w http.ResponseWriter, err error) {
	var catalogErr *application.CatalogError
	if !errors.As(err, &catalogErr) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusBadGateway
	if catalogErr.Kind == application.CatalogNoSourceSelected {
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Error: catalogErr.Error(), Kind: string(catalogErr.Kind)})
}

// ServeHTTP routes the request to the appropriate handler based on method and path.
func (h *ChannelHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/channels")

	// GET /channels?q= - list the current catalog
	if r.Method == http.MethodGet && path == "" {
		h.handleList(w, r)
		return
	}

	// POST /channels/reload - rebuild the catalog for the selected source
	if r.Method == http.MethodPost && path == "/reload" {
		h.handleReload(w, r)
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func toCatalogResponse(catalog application.Catalog, query string) catalogResponse {
	channels := channel.Filter(catalog.Channels, query)

	resp := catalogResponse{
		Source:   catalog.Location,
		Total:    len(catalog.Channels),
		Channels: make([]channelResponse, len(channels)),
	}
	if !catalog.BuiltAt.IsZero() {
		resp.BuiltAt = catalog.BuiltAt.Format(time.RFC3339)
	}
	for i, ch := range channels {
		resp.Channels[i] = channelResponse{
			Name:     ch.Name(),
			StreamID: ch.StreamID(),
			Icon:     ch.IconRef(),
		}
	}
	return resp
}

// handleList handles GET /channels
func (h *ChannelHTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Current()
	if catalog.Err != nil {
		writeCatalogError(w, catalog.Err)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogResponse(catalog, r.URL.Query().Get("q")))
}

// handleReload handles POST /channels/reload
func (h *ChannelHTTPHandler) handleReload(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.Reload(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogResponse(catalog, ""))
}
