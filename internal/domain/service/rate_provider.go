package service

import (
	"context"
	"time"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
)

// RateProvider defines the interface for retrieving rates from an exchange-rate service
type RateProvider interface {
	// ListCurrencies returns the currency catalog. It never fails; on any
	// error it returns entity.FallbackCurrencies.
	ListCurrencies(ctx context.Context) []string

	// GetLatestRate returns the latest base->target rate and the date it applies to
	GetLatestRate(ctx context.Context, base, target string) (float64, string, error)

	// GetAllLatestRates returns every latest rate relative to base and the date
	GetAllLatestRates(ctx context.Context, base string) (entity.RateMap, string, error)

	// GetHistoricalRates returns the base->target series between two dates inclusive
	GetHistoricalRates(ctx context.Context, base, target string, start, end time.Time) (entity.TimeSeriesRateMap, error)
}
