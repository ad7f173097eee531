// Package handler exposes the converter's user actions over HTTP
package handler

import (
	"net/http"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ConversionHandler handles the currency list, convert and convert-all actions
type ConversionHandler struct {
	service *service.ConversionService
	session *session.Session
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewConversionHandler creates a new conversion handler
func NewConversionHandler(svc *service.ConversionService, sess *session.Session, m *metrics.Metrics, log logger.Logger) *ConversionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionHandler{
		service: svc,
		session: sess,
		metrics: m,
		logger:  log,
	}
}

// ListCurrencies returns the currency catalog. It always succeeds.
func (h *ConversionHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies := h.service.ListCurrencies(r.Context())
	writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: currencies})
}

// Convert handles GET /convert?from=&to=&amount=
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	h.logger.Info("Handling convert request", map[string]interface{}{
		"request_id": requestID,
		"from":       query.Get("from"),
		"to":         query.Get("to"),
	})

	result, err := h.service.Convert(r.Context(), query.Get("from"), query.Get("to"), query.Get("amount"))
	observe(h.metrics, ActionConvert, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ConversionResponse{
		Base:            result.Base,
		Target:          result.Target,
		Amount:          result.Amount,
		Rate:            result.Rate,
		Converted:       result.Converted,
		ConvertedAmount: entity.FormatAmount(result.Converted),
		Summary:         result.Summary(),
		Date:            result.Date,
	})
}

// ConvertAll handles GET /convert/all?from=&amount= and makes the table the
// session's current table
func (h *ConversionHandler) ConvertAll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	h.logger.Info("Handling convert-all request", map[string]interface{}{
		"request_id": requestID,
		"from":       query.Get("from"),
	})

	table, err := h.service.ConvertAll(r.Context(), query.Get("from"), query.Get("amount"))
	observe(h.metrics, ActionConvertAll, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.session.SetTable(table)
	writeJSON(w, http.StatusOK, newTableResponse(table))
}

// RegisterRoutes registers the conversion handler routes
func (h *ConversionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/currencies", h.ListCurrencies).Methods("GET")
	router.HandleFunc("/convert", h.Convert).Methods("GET")
	router.HandleFunc("/convert/all", h.ConvertAll).Methods("GET")

	h.logger.Info("Conversion routes registered", map[string]interface{}{
		"routes": []string{
			"GET /currencies",
			"GET /convert",
			"GET /convert/all",
		},
	})
}
