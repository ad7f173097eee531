package service

import (
	"context"
	"fmt"
	"io"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/export"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
)

// ExportService writes the current conversion table to a file format
type ExportService struct {
	logger logger.Logger
}

// NewExportService creates a new export service
func NewExportService(log logger.Logger) *ExportService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ExportService{logger: log}
}

// Export writes table to w. A missing or empty table is ErrNothingToExport and
// nothing is written.
func (s *ExportService) Export(ctx context.Context, w io.Writer, table *entity.ConversionTable, format export.Format, theme entity.Theme) error {
	requestID := middleware.GetRequestID(ctx)

	if table == nil || len(table.Rows) == 0 {
		s.logger.Warn("Export requested with no table", map[string]interface{}{
			"request_id": requestID,
			"format":     string(format),
		})
		return fmt.Errorf("%w: convert an amount to all currencies first", entity.ErrNothingToExport)
	}

	if err := export.WriteTable(w, format, table, theme); err != nil {
		s.logger.Error("Export failed", map[string]interface{}{
			"request_id": requestID,
			"format":     string(format),
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to export table: %w", err)
	}

	s.logger.Info("Table exported", map[string]interface{}{
		"request_id": requestID,
		"format":     string(format),
		"base":       table.Base,
		"rows":       len(table.Rows),
	})

	return nil
}
