package driver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/channel"
)

// PlayHTTPHandler handles requests to open a channel in the external player.
type PlayHTTPHandler struct {
	service *application.PlaybackService
	logger  *slog.Logger
}

// NewPlayHTTPHandler creates a new HTTP handler for playback.
func NewPlayHTTPHandler(service *application.PlaybackService, logger *slog.Logger) *PlayHTTPHandler {
	return &PlayHTTPHandler{service: service, logger: logger}
}

type playRequest struct {
	StreamID string `json:"streamId"`
}

type playResponse struct {
	URL string `json:"url"`
}

// ServeHTTP handles POST /play
func (h *PlayHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	streamURL, err := h.service.Play(r.Context(), req.StreamID)
	if err != nil {
		switch {
		case errors.Is(err, channel.ErrEmptyStreamID), errors.Is(err, channel.ErrInvalidStreamID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, application.ErrPlayerNotConfigured):
			writeError(w, http.StatusPreconditionFailed, err.Error())
		case errors.Is(err, application.ErrPlayerLaunchFailed):
			h.logger.Error("player launch failed", "stream_id", req.StreamID, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusAccepted, playResponse{URL: streamURL})
}
