package handler

import (
	"net/http"

	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ThemeHandler reports and toggles the display theme
type ThemeHandler struct {
	session *session.Session
	logger  logger.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(sess *session.Session, log logger.Logger) *ThemeHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ThemeHandler{
		session: sess,
		logger:  log,
	}
}

// GetTheme handles GET /theme
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Theme())
}

// ToggleTheme handles POST /theme/toggle
func (h *ThemeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.session.ToggleTheme()

	h.logger.Info("Theme toggled", map[string]interface{}{
		"request_id": middleware.GetRequestID(r.Context()),
		"theme":      theme.Name,
	})

	writeJSON(w, http.StatusOK, theme)
}

// RegisterRoutes registers the theme handler routes
func (h *ThemeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/theme", h.GetTheme).Methods("GET")
	router.HandleFunc("/theme/toggle", h.ToggleTheme).Methods("POST")

	h.logger.Info("Theme routes registered", map[string]interface{}{
		"routes": []string{
			"GET /theme",
			"POST /theme/toggle",
		},
	})
}
