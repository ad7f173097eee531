package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/samber/lo"
)

// DefaultTrendDays is used when the duration selection cannot be parsed
const DefaultTrendDays = 7

// TrendDayOptions are the durations offered by the display
var TrendDayOptions = []int{7, 30, 90}

// BuildTrend extracts the target rate for every date, sorted ascending by date
func BuildTrend(series entity.TimeSeriesRateMap, target string) ([]entity.TrendPoint, error) {
	dates := lo.Keys(series)
	// ISO-8601 dates sort chronologically as strings
	sort.Strings(dates)

	points := make([]entity.TrendPoint, 0, len(dates))
	for _, date := range dates {
		rate, ok := series[date].Get(target)
		if !ok {
			return nil, fmt.Errorf("%w: no %s rate on %s", entity.ErrMissingData, target, date)
		}
		points = append(points, entity.TrendPoint{Date: date, Rate: rate})
	}

	return points, nil
}

// ParseTrendDays parses the duration selection, returning fallback when the
// text is not a positive integer
func ParseTrendDays(text string, fallback int) int {
	days, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || days <= 0 {
		return fallback
	}
	return days
}
