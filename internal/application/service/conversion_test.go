package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]float64{
		"100":    100,
		" 12.5 ": 12.5,
		"0":      0,
		"-3":     -3,
		"1e3":    1000,
	}
	for text, want := range valid {
		got, err := ParseAmount(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	for _, text := range []string{"", "   ", "abc", "12,5", "NaN", "Inf", "-Inf", "1.2.3"} {
		_, err := ParseAmount(text)
		assert.True(t, errors.Is(err, entity.ErrInvalidAmount), "expected invalid amount for %q", text)
	}
}

func TestConvertIsExactProduct(t *testing.T) {
	cases := []struct {
		amount, rate float64
	}{
		{100, 83.12},
		{1, 0.000123},
		{0, 5},
		{12345.678, 1.1},
		{-10, 2.5},
	}
	for _, c := range cases {
		assert.Equal(t, c.amount*c.rate, Convert(c.amount, c.rate))
	}
}

func TestBuildTable(t *testing.T) {
	rates := entity.RateMap{
		{Currency: "INR", Rate: 83.125},
		{Currency: "EUR", Rate: 0.91},
		{Currency: "JPY", Rate: 148.2012},
	}

	rows := BuildTable(100, rates)

	require.Len(t, rows, len(rates))
	for i, r := range rates {
		assert.Equal(t, r.Currency, rows[i].Currency)
		assert.Equal(t, 100*r.Rate, rows[i].Amount)
	}
}

func TestBuildTableEmpty(t *testing.T) {
	assert.Empty(t, BuildTable(10, nil))
}

func TestBuildTrendSortsByDate(t *testing.T) {
	dates := []string{"2024-01-05", "2024-01-02", "2024-01-04", "2024-01-03", "2023-12-29"}
	rates := map[string]float64{
		"2023-12-29": 83.0,
		"2024-01-02": 83.1,
		"2024-01-03": 83.2,
		"2024-01-04": 83.3,
		"2024-01-05": 83.4,
	}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(dates), func(a, b int) { dates[a], dates[b] = dates[b], dates[a] })

		series := entity.TimeSeriesRateMap{}
		for _, d := range dates {
			series[d] = entity.RateMap{{Currency: "EUR", Rate: 0.9}, {Currency: "INR", Rate: rates[d]}}
		}

		points, err := BuildTrend(series, "INR")
		require.NoError(t, err)
		require.Len(t, points, len(dates))

		for j := 1; j < len(points); j++ {
			assert.Less(t, points[j-1].Date, points[j].Date)
		}
		for _, p := range points {
			assert.Equal(t, rates[p.Date], p.Rate)
		}
	}
}

func TestBuildTrendMissingTarget(t *testing.T) {
	series := entity.TimeSeriesRateMap{
		"2024-01-02": {{Currency: "INR", Rate: 83.1}},
		"2024-01-03": {{Currency: "EUR", Rate: 0.91}},
	}

	points, err := BuildTrend(series, "INR")

	assert.Nil(t, points)
	assert.True(t, errors.Is(err, entity.ErrMissingData))
	assert.Contains(t, err.Error(), "2024-01-03")
}

func TestBuildTrendEmptySeries(t *testing.T) {
	points, err := BuildTrend(entity.TimeSeriesRateMap{}, "INR")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestParseTrendDays(t *testing.T) {
	assert.Equal(t, 30, ParseTrendDays("30", 7))
	assert.Equal(t, 90, ParseTrendDays(" 90 ", 7))
	assert.Equal(t, 7, ParseTrendDays("", 7))
	assert.Equal(t, 7, ParseTrendDays("abc", 7))
	assert.Equal(t, 7, ParseTrendDays("0", 7))
	assert.Equal(t, 14, ParseTrendDays("-5", 14))
}
