package service

import (
	"context"
	"fmt"
	"time"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	domain "github.com/damon-houk/currency-converter/internal/domain/service"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
)

// TrendService builds historical rate trends
type TrendService struct {
	rates       domain.RateProvider
	logger      logger.Logger
	now         func() time.Time
	defaultDays int
}

// NewTrendService creates a new trend service
func NewTrendService(rates domain.RateProvider, log logger.Logger) *TrendService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TrendService{
		rates:       rates,
		logger:      log,
		now:         time.Now,
		defaultDays: DefaultTrendDays,
	}
}

// WithClock replaces the clock used to compute the date window
func (s *TrendService) WithClock(now func() time.Time) *TrendService {
	s.now = now
	return s
}

// WithDefaultDays sets the duration used when a caller passes a non-positive
// number of days
func (s *TrendService) WithDefaultDays(days int) *TrendService {
	if days > 0 {
		s.defaultDays = days
	}
	return s
}

// DefaultDays returns the duration used when none is selected
func (s *TrendService) DefaultDays() int {
	return s.defaultDays
}

// ShowTrend fetches the base->target series for the last days days, ending
// today, and orders it by date
func (s *TrendService) ShowTrend(ctx context.Context, base, target string, days int) (*entity.Trend, error) {
	requestID := middleware.GetRequestID(ctx)

	base, err := normalizeCurrency("base", base)
	if err != nil {
		return nil, err
	}
	target, err = normalizeCurrency("target", target)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = s.defaultDays
	}

	end := s.now()
	start := end.AddDate(0, 0, -days)

	series, err := s.rates.GetHistoricalRates(ctx, base, target, start, end)
	if err != nil {
		s.logger.Error("Failed to fetch historical rates", map[string]interface{}{
			"request_id": requestID,
			"base":       base,
			"target":     target,
			"days":       days,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to fetch historical rates: %w", err)
	}

	points, err := BuildTrend(series, target)
	if err != nil {
		s.logger.Error("Historical series incomplete", map[string]interface{}{
			"request_id": requestID,
			"base":       base,
			"target":     target,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Trend built", map[string]interface{}{
		"request_id": requestID,
		"base":       base,
		"target":     target,
		"days":       days,
		"points":     len(points),
	})

	return &entity.Trend{
		Base:      base,
		Target:    target,
		Days:      days,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Points:    points,
	}, nil
}
