package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() logger.Logger {
	return logger.NewZapLogger(io.Discard, logger.ErrorLevel)
}

func TestConversionServiceConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful conversion", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		rates.On("GetLatestRate", ctx, "USD", "INR").Return(83.12, "2024-01-05", nil).Once()

		result, err := svc.Convert(ctx, "usd", "inr", "100")

		require.NoError(t, err)
		assert.Equal(t, "USD", result.Base)
		assert.Equal(t, "INR", result.Target)
		assert.Equal(t, 100.0, result.Amount)
		assert.Equal(t, 83.12, result.Rate)
		assert.Equal(t, 100*83.12, result.Converted)
		assert.Equal(t, "2024-01-05", result.Date)
		assert.Equal(t, "100.00 USD = 8312.00 INR", result.Summary())

		rates.AssertExpectations(t)
	})

	t.Run("Invalid amount never reaches the rate service", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		for _, amount := range []string{"", "abc", "NaN"} {
			result, err := svc.Convert(ctx, "USD", "INR", amount)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, entity.ErrInvalidAmount))
		}

		rates.AssertNotCalled(t, "GetLatestRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid currency code", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		_, err := svc.Convert(ctx, "US", "INR", "10")
		assert.True(t, errors.Is(err, entity.ErrInvalidCurrency))

		_, err = svc.Convert(ctx, "USD", "IN1", "10")
		assert.True(t, errors.Is(err, entity.ErrInvalidCurrency))

		rates.AssertNotCalled(t, "GetLatestRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Service error is surfaced", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		rates.On("GetLatestRate", ctx, "USD", "INR").
			Return(0.0, "", fmt.Errorf("%w: connection refused", entity.ErrService)).Once()

		result, err := svc.Convert(ctx, "USD", "INR", "100")

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, entity.ErrService))
		assert.Contains(t, err.Error(), "failed to get exchange rate")

		rates.AssertExpectations(t)
	})
}

func TestConversionServiceConvertAll(t *testing.T) {
	ctx := context.Background()

	t.Run("One row per currency in service order", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		all := entity.RateMap{
			{Currency: "JPY", Rate: 148.2},
			{Currency: "EUR", Rate: 0.91},
			{Currency: "INR", Rate: 83.12},
		}
		rates.On("GetAllLatestRates", ctx, "USD").Return(all, "2024-01-05", nil).Once()

		table, err := svc.ConvertAll(ctx, "USD", "2")

		require.NoError(t, err)
		assert.Equal(t, "USD", table.Base)
		assert.Equal(t, 2.0, table.Amount)
		assert.Equal(t, "2024-01-05", table.Date)
		assert.Equal(t, []entity.TableRow{
			{Currency: "JPY", Amount: 2 * 148.2},
			{Currency: "EUR", Amount: 2 * 0.91},
			{Currency: "INR", Amount: 2 * 83.12},
		}, table.Rows)

		rates.AssertExpectations(t)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		table, err := svc.ConvertAll(ctx, "USD", "ten")

		assert.Nil(t, table)
		assert.True(t, errors.Is(err, entity.ErrInvalidAmount))
		rates.AssertNotCalled(t, "GetAllLatestRates", mock.Anything, mock.Anything)
	})

	t.Run("Service error", func(t *testing.T) {
		rates := new(mocks.MockRateProvider)
		svc := NewConversionService(rates, quietLogger())

		rates.On("GetAllLatestRates", ctx, "USD").
			Return(nil, "", fmt.Errorf("%w: status 500", entity.ErrService)).Once()

		table, err := svc.ConvertAll(ctx, "USD", "1")

		assert.Nil(t, table)
		assert.True(t, errors.Is(err, entity.ErrService))
	})
}

func TestConversionServiceListCurrencies(t *testing.T) {
	ctx := context.Background()
	rates := new(mocks.MockRateProvider)
	svc := NewConversionService(rates, quietLogger())

	rates.On("ListCurrencies", ctx).Return([]string{"EUR", "USD"}).Once()

	assert.Equal(t, []string{"EUR", "USD"}, svc.ListCurrencies(ctx))
	rates.AssertExpectations(t)
}
