package chart

import (
	"bytes"
	"testing"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrend() *entity.Trend {
	return &entity.Trend{
		Base:   "USD",
		Target: "INR",
		Days:   7,
		Points: []entity.TrendPoint{
			{Date: "2024-01-02", Rate: 83.2},
			{Date: "2024-01-03", Rate: 83.35},
		},
	}
}

func TestRenderTrend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTrend(&buf, testTrend(), entity.LightTheme))

	html := buf.String()
	assert.Contains(t, html, "USD to INR - Last 7 Days")
	assert.Contains(t, html, "2024-01-02")
	assert.Contains(t, html, "83.35")
	assert.Contains(t, html, entity.LightTheme.Background)
}

func TestRenderTrendDarkTheme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTrend(&buf, testTrend(), entity.DarkTheme))

	assert.Contains(t, buf.String(), entity.DarkTheme.Background)
	assert.Contains(t, buf.String(), "chalk")
}

func TestNewTrendChartSeries(t *testing.T) {
	line := NewTrendChart(testTrend(), entity.LightTheme)

	require.Len(t, line.MultiSeries, 1)
	assert.Equal(t, "INR", line.MultiSeries[0].Name)

	// The x axis is only materialized when the chart is rendered
	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))
	assert.Contains(t, buf.String(), `"xAxis":[{"name":"Date","data":["2024-01-02","2024-01-03"]`)
}
