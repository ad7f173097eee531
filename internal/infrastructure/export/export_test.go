package export

import (
	"bytes"
	"testing"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testTable() *entity.ConversionTable {
	return &entity.ConversionTable{
		Base:   "USD",
		Amount: 100,
		Date:   "2024-01-05",
		Rows: []entity.TableRow{
			{Currency: "EUR", Amount: 91},
			{Currency: "INR", Amount: 8312.5},
			{Currency: "JPY", Amount: 14820.123},
		},
	}
}

func TestWriteTableCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, testTable()))

	expected := "Currency,Rate\nEUR,91.00\nINR,8312.50\nJPY,14820.12\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTableCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, &entity.ConversionTable{Base: "USD"}))
	assert.Equal(t, "Currency,Rate\n", buf.String())
}

func TestCSVExporterOrdering(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewCSVExporter(&buf)

	assert.Error(t, exporter.WriteData([]string{"EUR", "1.00"}), "data before header")
	require.NoError(t, exporter.WriteHeader(TableHeader))
	assert.Error(t, exporter.WriteHeader(TableHeader), "header twice")
	assert.Error(t, exporter.WriteData([]string{"EUR"}), "short row")
}

func TestWriteTableXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTableXLSX(&buf, testTable(), entity.DarkTheme))

	f, err := excelize.OpenReader(&buf, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Currency", "Rate"}, rows[0])
	assert.Equal(t, []string{"EUR", "91"}, rows[1])
	assert.Equal(t, []string{"INR", "8312.5"}, rows[2])
	assert.Equal(t, "JPY", rows[3][0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "rates_USD_2024-01-05.xlsx", FormatXLSX.FileName(testTable()))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, FormatCSV, testTable(), entity.LightTheme))
	assert.Contains(t, buf.String(), "Currency,Rate")

	assert.Error(t, WriteTable(&buf, Format("pdf"), testTable(), entity.LightTheme))
}
