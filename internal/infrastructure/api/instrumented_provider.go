package api

import (
	"context"
	"time"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/domain/service"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
)

// InstrumentedRateProvider wraps a RateProvider with logging and metrics
type InstrumentedRateProvider struct {
	next    service.RateProvider
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewInstrumentedRateProvider decorates next. A nil metrics disables counting.
func NewInstrumentedRateProvider(next service.RateProvider, log logger.Logger, m *metrics.Metrics) *InstrumentedRateProvider {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &InstrumentedRateProvider{
		next:    next,
		logger:  log,
		metrics: m,
	}
}

// ListCurrencies lists the currency catalog
func (p *InstrumentedRateProvider) ListCurrencies(ctx context.Context) []string {
	start := time.Now()
	codes := p.next.ListCurrencies(ctx)
	p.observe("currencies", start, nil)

	p.logger.Info("Currency catalog loaded", map[string]interface{}{
		"count": len(codes),
	})

	return codes
}

// GetLatestRate finds the latest rate for a pair
func (p *InstrumentedRateProvider) GetLatestRate(ctx context.Context, base, target string) (float64, string, error) {
	p.logger.Info("Finding latest rate", map[string]interface{}{
		"base":   base,
		"target": target,
	})

	start := time.Now()
	rate, date, err := p.next.GetLatestRate(ctx, base, target)
	p.observe("latest", start, err)
	if err != nil {
		p.logger.Error("Failed to retrieve latest rate", map[string]interface{}{
			"base":   base,
			"target": target,
			"error":  err.Error(),
		})
		return 0, "", err
	}

	p.logger.Info("Latest rate found", map[string]interface{}{
		"base":      base,
		"target":    target,
		"rate":      rate,
		"rate_date": date,
	})

	return rate, date, nil
}

// GetAllLatestRates finds all latest rates for a base currency
func (p *InstrumentedRateProvider) GetAllLatestRates(ctx context.Context, base string) (entity.RateMap, string, error) {
	p.logger.Info("Finding all latest rates", map[string]interface{}{
		"base": base,
	})

	start := time.Now()
	rates, date, err := p.next.GetAllLatestRates(ctx, base)
	p.observe("latest_all", start, err)
	if err != nil {
		p.logger.Error("Failed to retrieve latest rates", map[string]interface{}{
			"base":  base,
			"error": err.Error(),
		})
		return nil, "", err
	}

	p.logger.Info("Latest rates found", map[string]interface{}{
		"base":      base,
		"count":     len(rates),
		"rate_date": date,
	})

	return rates, date, nil
}

// GetHistoricalRates finds the rate series for a pair
func (p *InstrumentedRateProvider) GetHistoricalRates(ctx context.Context, base, target string, start, end time.Time) (entity.TimeSeriesRateMap, error) {
	fields := map[string]interface{}{
		"base":       base,
		"target":     target,
		"start_date": start.Format(dateLayout),
		"end_date":   end.Format(dateLayout),
	}
	p.logger.Info("Finding historical rates", fields)

	began := time.Now()
	series, err := p.next.GetHistoricalRates(ctx, base, target, start, end)
	p.observe("timeseries", began, err)
	if err != nil {
		p.logger.WithFields(fields).Error("Failed to retrieve historical rates", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.WithFields(fields).Info("Historical rates found", map[string]interface{}{
		"dates": len(series),
	})

	return series, nil
}

func (p *InstrumentedRateProvider) observe(endpoint string, start time.Time, err error) {
	if p.metrics == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
	}
	p.metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	p.metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
