package export

import (
	"fmt"
	"io"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the exported table
const SheetName = "Rates"

const amountFormat = "0.00"

// WriteTableXLSX writes the table as a single-sheet workbook. The header row
// takes its fill from the theme; amounts are stored as numbers shown with two
// decimals.
func WriteTableXLSX(w io.Writer, table *entity.ConversionTable, theme entity.Theme) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyleID, err := f.NewStyle(headerStyle(theme))
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	numFmt := amountFormat
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	for col, header := range TableHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header at %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "B1", headerStyleID); err != nil {
		return fmt.Errorf("failed to apply header style: %w", err)
	}

	for i, row := range table.Rows {
		rowNum := i + 2
		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", rowNum), row.Currency); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		amountCell := fmt.Sprintf("B%d", rowNum)
		if err := f.SetCellValue(SheetName, amountCell, row.Amount); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		if err := f.SetCellStyle(SheetName, amountCell, amountCell, amountStyle); err != nil {
			return fmt.Errorf("failed to style row %d: %w", rowNum, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 15); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func headerStyle(theme entity.Theme) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{theme.ButtonBackground},
			Pattern: 1,
		},
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	}
}
