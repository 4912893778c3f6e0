package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ui/app/stories"
	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/logger"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	stories *stories.Registry
	logger  *logger.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, registry *stories.Registry, log *logger.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		stories: registry,
		logger:  log,
	}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// render buffers c so a failing component yields a clean 500.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.WithFields(map[string]any{"path": r.URL.Path}).Error(err, "render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(err, "encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
