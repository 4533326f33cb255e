package driver

import (
	"encoding/json"
	"net/http"

	"github.com/alorle/ace-launcher/internal/application"
	"github.com/alorle/ace-launcher/internal/settings"
)

// SettingsHTTPHandler handles HTTP requests for user settings.
type SettingsHTTPHandler struct {
	service *application.SettingsService
}

// NewSettingsHTTPHandler creates a new HTTP handler for settings.
func NewSettingsHTTPHandler(service *application.SettingsService) *SettingsHTTPHandler {
	return &SettingsHTTPHandler{service: service}
}

// settingsBody is the JSON form of settings, used for both requests and responses.
type settingsBody struct {
	PlayerPath     string `json:"vlcPath"`
	SelectedSource string `json:"selectedListUrl"`
}

func toSettingsBody(cfg settings.Settings) settingsBody {
	return settingsBody{PlayerPath: cfg.PlayerPath(), SelectedSource: cfg.SelectedSource()}
}

// ServeHTTP handles GET and PUT /settings
func (h *SettingsHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg, err := h.service.Get(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, toSettingsBody(cfg))

	case http.MethodPut:
		var req settingsBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cfg, err := h.service.Save(r.Context(), req.PlayerPath, req.SelectedSource)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, toSettingsBody(cfg))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
