package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// errorStatus maps the error taxonomy to an HTTP status and a short message
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, entity.ErrInvalidCurrency):
		return http.StatusBadRequest, "Invalid currency"
	case errors.Is(err, entity.ErrMalformedPair):
		return http.StatusBadRequest, "Malformed favorite pair"
	case errors.Is(err, entity.ErrMissingData):
		return http.StatusUnprocessableEntity, "Historical data incomplete"
	case errors.Is(err, entity.ErrNothingToExport):
		return http.StatusConflict, "Nothing to export"
	case errors.Is(err, entity.ErrService):
		return http.StatusBadGateway, "Exchange rate service error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeError logs err and sends it as a single descriptive message
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	requestID := middleware.GetRequestID(r.Context())
	status, message := errorStatus(err)

	fields := map[string]interface{}{
		"request_id":  requestID,
		"status_code": status,
		"error":       err.Error(),
	}
	if status >= http.StatusInternalServerError {
		log.Error(message, fields)
	} else {
		log.Warn(message, fields)
	}

	sendErrorResponse(w, log, message, err.Error(), status, requestID)
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(resp)
}

// writeJSON sends v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeBody sends an already rendered body. A failed write can only be logged
// since the status line is already out.
func writeBody(w http.ResponseWriter, r *http.Request, log logger.Logger, body []byte) {
	if _, err := w.Write(body); err != nil {
		log.Warn("Failed to write response body", map[string]interface{}{
			"request_id": middleware.GetRequestID(r.Context()),
			"bytes":      len(body),
			"error":      err.Error(),
		})
	}
}

// observe records a user action when metrics are enabled
func observe(m *metrics.Metrics, action string, err error) {
	if m != nil {
		m.ObserveAction(action, err)
	}
}
