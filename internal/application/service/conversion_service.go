// Package service internal/application/service/conversion_service.go
package service

import (
	"context"
	"fmt"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	domain "github.com/damon-houk/currency-converter/internal/domain/service"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
)

// ConversionResult is a single-pair conversion
type ConversionResult struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
	Date      string  `json:"date"`
}

// Summary is the line shown to the user, e.g. "100.00 USD = 8312.00 INR"
func (r *ConversionResult) Summary() string {
	return fmt.Sprintf("%s %s = %s %s",
		entity.FormatAmount(r.Amount), r.Base,
		entity.FormatAmount(r.Converted), r.Target)
}

// ConversionService handles single and multi-currency conversion
type ConversionService struct {
	rates  domain.RateProvider
	logger logger.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(rates domain.RateProvider, log logger.Logger) *ConversionService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionService{
		rates:  rates,
		logger: log,
	}
}

// ListCurrencies returns the currency catalog; it never fails
func (s *ConversionService) ListCurrencies(ctx context.Context) []string {
	return s.rates.ListCurrencies(ctx)
}

// Convert converts amountText from base to target at the latest rate. The
// amount is validated before the rate service is called.
func (s *ConversionService) Convert(ctx context.Context, base, target, amountText string) (*ConversionResult, error) {
	requestID := middleware.GetRequestID(ctx)

	amount, err := ParseAmount(amountText)
	if err != nil {
		s.logger.Warn("Rejected amount", map[string]interface{}{
			"request_id": requestID,
			"amount":     amountText,
		})
		return nil, err
	}

	base, err = normalizeCurrency("base", base)
	if err != nil {
		return nil, err
	}
	target, err = normalizeCurrency("target", target)
	if err != nil {
		return nil, err
	}

	rate, date, err := s.rates.GetLatestRate(ctx, base, target)
	if err != nil {
		s.logger.Error("Failed to get exchange rate", map[string]interface{}{
			"request_id": requestID,
			"base":       base,
			"target":     target,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	result := &ConversionResult{
		Base:      base,
		Target:    target,
		Amount:    amount,
		Rate:      rate,
		Converted: Convert(amount, rate),
		Date:      date,
	}

	s.logger.Info("Conversion completed", map[string]interface{}{
		"request_id":       requestID,
		"base":             base,
		"target":           target,
		"original_amount":  amount,
		"exchange_rate":    rate,
		"converted_amount": result.Converted,
		"rate_date":        date,
	})

	return result, nil
}

// ConvertAll converts amountText from base into every currency the service
// knows, one row per currency in service order
func (s *ConversionService) ConvertAll(ctx context.Context, base, amountText string) (*entity.ConversionTable, error) {
	requestID := middleware.GetRequestID(ctx)

	amount, err := ParseAmount(amountText)
	if err != nil {
		s.logger.Warn("Rejected amount", map[string]interface{}{
			"request_id": requestID,
			"amount":     amountText,
		})
		return nil, err
	}

	base, err = normalizeCurrency("base", base)
	if err != nil {
		return nil, err
	}

	rates, date, err := s.rates.GetAllLatestRates(ctx, base)
	if err != nil {
		s.logger.Error("Failed to fetch multi-currency rates", map[string]interface{}{
			"request_id": requestID,
			"base":       base,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to fetch multi-currency rates: %w", err)
	}

	table := &entity.ConversionTable{
		Base:   base,
		Amount: amount,
		Date:   date,
		Rows:   BuildTable(amount, rates),
	}

	s.logger.Info("Conversion table built", map[string]interface{}{
		"request_id": requestID,
		"base":       base,
		"amount":     amount,
		"rows":       len(table.Rows),
		"rate_date":  date,
	})

	return table, nil
}
