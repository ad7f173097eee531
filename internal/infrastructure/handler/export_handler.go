package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/infrastructure/export"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ExportHandler handles downloading the current conversion table
type ExportHandler struct {
	service *service.ExportService
	session *session.Session
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc *service.ExportService, sess *session.Session, m *metrics.Metrics, log logger.Logger) *ExportHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ExportHandler{
		service: svc,
		session: sess,
		metrics: m,
		logger:  log,
	}
}

// Export handles GET /export?format=csv|xlsx. The file is built in memory so
// that a failure can still be reported as an error response.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.logger.Warn("Unsupported export format", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Unsupported export format",
			"The 'format' query parameter must be csv or xlsx", http.StatusBadRequest, requestID)
		return
	}

	table, _ := h.session.Table()

	var buf bytes.Buffer
	err = h.service.Export(r.Context(), &buf, table, format, h.session.Theme())
	observe(h.metrics, ActionExport, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(table)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	writeBody(w, r, h.logger, buf.Bytes())
}

// RegisterRoutes registers the export handler routes
func (h *ExportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/export", h.Export).Methods("GET")

	h.logger.Info("Export routes registered", map[string]interface{}{
		"routes": []string{"GET /export"},
	})
}
