package driver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/source"
)

// SourceHTTPHandler handles HTTP requests for playlist source management.
type SourceHTTPHandler struct {
	service *application.SourceService
}

// NewSourceHTTPHandler creates a new HTTP handler for sources.
func NewSourceHTTPHandler(service *application.SourceService) *SourceHTTPHandler {
	return &SourceHTTPHandler{service: service}
}

// sourceRequest represents the JSON body for adding a source.
type sourceRequest struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	IsFile bool   `json:"isFile"`
}

// sourceResponse represents a source in JSON format.
type sourceResponse struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	IsFile bool   `json:"isFile"`
}

func toSourceResponse(src source.Source) sourceResponse {
	return sourceResponse{Name: src.Name(), URL: src.Location(), IsFile: src.IsFile()}
}

// ServeHTTP routes the request to the appropriate handler based on method.
// Locations contain slashes, so DELETE takes the location as the url query parameter.
func (h *SourceHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/sources" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleAdd(w, r)
	case http.MethodDelete:
		h.handleRemove(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleList handles GET /sources
func (h *SourceHTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	sources, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]sourceResponse, len(sources))
	for i, src := range sources {
		response[i] = toSourceResponse(src)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleAdd handles POST /sources
func (h *SourceHTTPHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	src, err := h.service.Add(r.Context(), req.Name, req.URL, req.IsFile)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSourceResponse(src))
}

// handleRemove handles DELETE /sources?url=
func (h *SourceHTTPHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("url")
	if location == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	if err := h.service.Remove(r.Context(), location); err != nil {
		writeSourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, source.ErrEmptyName), errors.Is(err, source.ErrEmptyLocation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, source.ErrPersistenceFailed):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
