package driver

import "net/http"

// Download pages for the external programs ace-launcher depends on.
const (
	PlayerDownloadURL = "https://www.videolan.org/vlc/index.es.html"
	EngineDownloadURL = "https://download.acestream.media/products/acestream-full/win/latest"
)

type infoResponse struct {
	PlayerDownloadURL string `json:"vlcDownloadUrl"`
	EngineDownloadURL string `json:"acestreamDownloadUrl"`
	EngineURL         string `json:"acestreamEngineUrl"`
}

// InfoHTTPHandler serves the links users need to install the player and engine.
type InfoHTTPHandler struct {
	engineURL string
}

// NewInfoHTTPHandler creates a new HTTP handler for installation info.
func NewInfoHTTPHandler(engineURL string) *InfoHTTPHandler {
	return &InfoHTTPHandler{engineURL: engineURL}
}

// ServeHTTP handles GET /info
func (h *InfoHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, infoResponse{
		PlayerDownloadURL: PlayerDownloadURL,
		EngineDownloadURL: EngineDownloadURL,
		EngineURL:         h.engineURL,
	})
}
