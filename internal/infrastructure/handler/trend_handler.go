package handler

import (
	"bytes"
	"net/http"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/infrastructure/chart"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// TrendHandler handles the show-trend action
type TrendHandler struct {
	service *service.TrendService
	session *session.Session
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(svc *service.TrendService, sess *session.Session, m *metrics.Metrics, log logger.Logger) *TrendHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TrendHandler{
		service: svc,
		session: sess,
		metrics: m,
		logger:  log,
	}
}

// ShowTrend handles GET /trend?from=&to=&days=[&format=html]. An unparseable
// days value falls back to the configured default.
func (h *TrendHandler) ShowTrend(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()
	days := service.ParseTrendDays(query.Get("days"), h.service.DefaultDays())

	h.logger.Info("Handling trend request", map[string]interface{}{
		"request_id": requestID,
		"from":       query.Get("from"),
		"to":         query.Get("to"),
		"days":       days,
	})

	trend, err := h.service.ShowTrend(r.Context(), query.Get("from"), query.Get("to"), days)
	observe(h.metrics, ActionShowTrend, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if query.Get("format") == "html" {
		var buf bytes.Buffer
		if err := chart.RenderTrend(&buf, trend, h.session.Theme()); err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		writeBody(w, r, h.logger, buf.Bytes())
		return
	}

	writeJSON(w, http.StatusOK, TrendResponse{
		Title:     trend.Title(),
		Base:      trend.Base,
		Target:    trend.Target,
		Days:      trend.Days,
		StartDate: trend.StartDate,
		EndDate:   trend.EndDate,
		Points:    trend.Points,
	})
}

// RegisterRoutes registers the trend handler routes
func (h *TrendHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/trend", h.ShowTrend).Methods("GET")

	h.logger.Info("Trend routes registered", map[string]interface{}{
		"routes": []string{"GET /trend"},
	})
}
