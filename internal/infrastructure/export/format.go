package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
)

// Format is an export file format
type Format string

const (
	// FormatCSV is comma-separated text
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx" in any case; empty means CSV
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName returns a download name for a table in this format
func (f Format) FileName(table *entity.ConversionTable) string {
	return fmt.Sprintf("rates_%s_%s.%s", table.Base, table.Date, f)
}

// WriteTable writes table in the given format
func WriteTable(w io.Writer, f Format, table *entity.ConversionTable, theme entity.Theme) error {
	switch f {
	case FormatCSV:
		return WriteTableCSV(w, table)
	case FormatXLSX:
		return WriteTableXLSX(w, table, theme)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}
