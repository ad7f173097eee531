// internal/mocks/mocks.go
package mocks

import (
	"context"
	"time"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/stretchr/testify/mock"
)

// MockRateProvider mocks the RateProvider interface
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) ListCurrencies(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockRateProvider) GetLatestRate(ctx context.Context, base, target string) (float64, string, error) {
	args := m.Called(ctx, base, target)
	return args.Get(0).(float64), args.String(1), args.Error(2)
}

func (m *MockRateProvider) GetAllLatestRates(ctx context.Context, base string) (entity.RateMap, string, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(entity.RateMap), args.String(1), args.Error(2)
}

func (m *MockRateProvider) GetHistoricalRates(ctx context.Context, base, target string, start, end time.Time) (entity.TimeSeriesRateMap, error) {
	args := m.Called(ctx, base, target, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.TimeSeriesRateMap), args.Error(1)
}

// MockFavoritesRepository mocks the FavoritesRepository interface
type MockFavoritesRepository struct {
	mock.Mock
}

func (m *MockFavoritesRepository) Add(ctx context.Context, pair entity.FavoritePair) (bool, error) {
	args := m.Called(ctx, pair)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritesRepository) List(ctx context.Context) ([]entity.FavoritePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavoritePair), args.Error(1)
}

// MockLogger mocks the logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	m.Called(key, value)
	return m
}

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	m.Called(fields)
	return m
}
