// Package chart renders rate trends as interactive HTML line charts
package chart

import (
	"fmt"
	"io"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// chartTheme maps the application palette to an echarts theme
func chartTheme(theme entity.Theme) string {
	if theme.Dark {
		return types.ThemeChalk
	}
	return types.ThemeWesteros
}

// NewTrendChart builds a line chart of rate against date
func NewTrendChart(trend *entity.Trend, theme entity.Theme) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithAnimation(false),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       trend.Title(),
			Theme:           chartTheme(theme),
			BackgroundColor: theme.Background,
			Width:           "900px",
			Height:          "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: trend.Title(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Rate",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	dates := make([]string, 0, len(trend.Points))
	data := make([]opts.LineData, 0, len(trend.Points))
	for _, p := range trend.Points {
		dates = append(dates, p.Date)
		data = append(data, opts.LineData{Name: p.Date, Value: p.Rate})
	}

	line.SetXAxis(dates).AddSeries(trend.Target, data)
	return line
}

// RenderTrend writes the trend chart as a standalone HTML page
func RenderTrend(w io.Writer, trend *entity.Trend, theme entity.Theme) error {
	if err := NewTrendChart(trend, theme).Render(w); err != nil {
		return fmt.Errorf("failed to render trend chart: %w", err)
	}
	return nil
}
