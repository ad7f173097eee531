// Package export writes conversion tables to files
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
)

// TableHeader is the header row of every export
var TableHeader = []string{"Currency", "Rate"}

// CSVExporter writes rows of a fixed width to a CSV stream
type CSVExporter struct {
	csvWriter *csv.Writer
	headers   []string
	hasHeader bool
}

// NewCSVExporter creates an exporter writing to w
func NewCSVExporter(w io.Writer) *CSVExporter {
	return &CSVExporter{
		csvWriter: csv.NewWriter(w),
	}
}

// WriteHeader writes the header row; it may only be called once
func (e *CSVExporter) WriteHeader(headers []string) error {
	if e.hasHeader {
		return fmt.Errorf("header has already been written")
	}

	if err := e.csvWriter.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	e.headers = headers
	e.hasHeader = true
	return nil
}

// WriteData writes one data row after the header
func (e *CSVExporter) WriteData(data []string) error {
	if !e.hasHeader {
		return fmt.Errorf("header must be written before data")
	}

	if len(data) != len(e.headers) {
		return fmt.Errorf("data length (%d) does not match header length (%d)", len(data), len(e.headers))
	}

	if err := e.csvWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write data row: %w", err)
	}

	return nil
}

// Flush writes buffered rows to the underlying writer
func (e *CSVExporter) Flush() error {
	e.csvWriter.Flush()
	if err := e.csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// WriteTableCSV writes the table with header Currency,Rate and each amount
// formatted exactly as it is displayed
func WriteTableCSV(w io.Writer, table *entity.ConversionTable) error {
	exporter := NewCSVExporter(w)

	if err := exporter.WriteHeader(TableHeader); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if err := exporter.WriteData([]string{row.Currency, entity.FormatAmount(row.Amount)}); err != nil {
			return err
		}
	}

	return exporter.Flush()
}
