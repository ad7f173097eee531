package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/stretchr/testify/assert"
)

// brokenWriter accepts headers but fails every body write
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestWriteBodyLogsFailedWrite(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZapLogger(&buf, logger.WarnLevel)

	req := httptest.NewRequest("GET", "/export", nil)
	req = req.WithContext(middleware.WithRequestID(req.Context(), "req-42"))

	writeBody(brokenWriter{httptest.NewRecorder()}, req, log, []byte("Currency,Rate\n"))

	logs := buf.String()
	assert.Contains(t, logs, "Failed to write response body")
	assert.Contains(t, logs, "req-42")
	assert.Contains(t, logs, "connection reset by peer")
}

func TestExportLogsFailedWrite(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZapLogger(&buf, logger.WarnLevel)

	sess := session.New(false)
	sess.SetTable(&entity.ConversionTable{
		Base: "USD",
		Date: "2024-01-05",
		Rows: []entity.TableRow{{Currency: "INR", Amount: 83.12}},
	})

	h := NewExportHandler(service.NewExportService(logger.NewZapLogger(io.Discard, logger.ErrorLevel)), sess, nil, log)

	rec := httptest.NewRecorder()
	h.Export(brokenWriter{rec}, httptest.NewRequest("GET", "/export?format=csv", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "Failed to write response body")
}

func TestWriteBodySuccess(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZapLogger(&buf, logger.WarnLevel)

	rec := httptest.NewRecorder()
	writeBody(rec, httptest.NewRequest("GET", "/trend", nil), log, []byte("<html></html>"))

	assert.Equal(t, "<html></html>", rec.Body.String())
	assert.Empty(t, buf.String())
}
