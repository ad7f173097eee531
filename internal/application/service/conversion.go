package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/samber/lo"
)

// ParseAmount parses user-supplied amount text as a finite number
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: amount is empty", entity.ErrInvalidAmount)
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", entity.ErrInvalidAmount, text)
	}

	return amount, nil
}

// Convert applies a rate to an amount. No rounding is performed.
func Convert(amount, rate float64) float64 {
	return amount * rate
}

// BuildTable converts amount with every rate, one row per entry, keeping the
// order of rates
func BuildTable(amount float64, rates entity.RateMap) []entity.TableRow {
	return lo.Map(rates, func(r entity.Rate, _ int) entity.TableRow {
		return entity.TableRow{
			Currency: r.Currency,
			Amount:   Convert(amount, r.Rate),
		}
	})
}

// normalizeCurrency upper-cases a code and checks its syntax
func normalizeCurrency(role, code string) (string, error) {
	normalized := entity.NormalizeCode(code)
	if !entity.IsCurrencyCode(normalized) {
		return "", fmt.Errorf("%w: %s currency %q must be three letters", entity.ErrInvalidCurrency, role, code)
	}
	return normalized, nil
}
