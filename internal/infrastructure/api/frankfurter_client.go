package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/samber/lo"
)

const (
	// DefaultBaseURL is the public Frankfurter API
	DefaultBaseURL = "https://api.frankfurter.app"

	currenciesPath = "/currencies"
	latestPath     = "/latest"

	dateLayout = "2006-01-02"
)

// FrankfurterClient implements the RateProvider interface against a
// Frankfurter-compatible exchange-rate service
type FrankfurterClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewFrankfurterClient creates a new rate service client. A nil httpClient
// gets a client with a 10 second timeout.
func NewFrankfurterClient(baseURL string, httpClient *http.Client, log logger.Logger) *FrankfurterClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &FrankfurterClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log,
	}
}

// latestResponse represents the body of GET /latest
type latestResponse struct {
	Amount float64        `json:"amount"`
	Base   string         `json:"base"`
	Date   string         `json:"date"`
	Rates  entity.RateMap `json:"rates"`
}

// timeSeriesResponse represents the body of GET /{start}..{end}
type timeSeriesResponse struct {
	Amount    float64                   `json:"amount"`
	Base      string                    `json:"base"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Rates     map[string]entity.RateMap `json:"rates"`
}

// ListCurrencies returns the sorted currency catalog, or the fallback set on
// any failure
func (c *FrankfurterClient) ListCurrencies(ctx context.Context) []string {
	var catalog map[string]string
	if err := c.get(ctx, currenciesPath, nil, &catalog); err != nil {
		c.logger.Warn("Currency catalog unavailable, using fallback list", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackCurrencies()
	}

	if len(catalog) == 0 {
		c.logger.Warn("Currency catalog empty, using fallback list", nil)
		return fallbackCurrencies()
	}

	codes := lo.Keys(catalog)
	sort.Strings(codes)
	return codes
}

// GetLatestRate returns the latest base->target rate and its date
func (c *FrankfurterClient) GetLatestRate(ctx context.Context, base, target string) (float64, string, error) {
	query := url.Values{}
	query.Set("from", base)
	query.Set("to", target)

	var resp latestResponse
	if err := c.get(ctx, latestPath, query, &resp); err != nil {
		return 0, "", err
	}

	rate, ok := resp.Rates.Get(target)
	if !ok {
		return 0, "", fmt.Errorf("%w: target currency %s not found in rates for %s", entity.ErrService, target, base)
	}
	if rate <= 0 {
		return 0, "", fmt.Errorf("%w: invalid exchange rate value %f for %s", entity.ErrService, rate, target)
	}

	return rate, resp.Date, nil
}

// GetAllLatestRates returns every latest rate relative to base, in the order
// the service listed them
func (c *FrankfurterClient) GetAllLatestRates(ctx context.Context, base string) (entity.RateMap, string, error) {
	query := url.Values{}
	query.Set("from", base)

	var resp latestResponse
	if err := c.get(ctx, latestPath, query, &resp); err != nil {
		return nil, "", err
	}

	if len(resp.Rates) == 0 {
		return nil, "", fmt.Errorf("%w: no rates returned for %s", entity.ErrService, base)
	}
	if err := validateRates(resp.Rates); err != nil {
		return nil, "", err
	}

	return resp.Rates, resp.Date, nil
}

// GetHistoricalRates returns the base->target series between start and end
func (c *FrankfurterClient) GetHistoricalRates(ctx context.Context, base, target string, start, end time.Time) (entity.TimeSeriesRateMap, error) {
	path := fmt.Sprintf("/%s..%s", start.Format(dateLayout), end.Format(dateLayout))

	query := url.Values{}
	query.Set("from", base)
	query.Set("to", target)

	var resp timeSeriesResponse
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("%w: no historical rates for %s to %s between %s and %s",
			entity.ErrService, base, target, start.Format(dateLayout), end.Format(dateLayout))
	}

	for date, rates := range resp.Rates {
		if _, ok := rates.Get(target); !ok {
			return nil, fmt.Errorf("%w: target currency %s missing on %s", entity.ErrService, target, date)
		}
		if err := validateRates(rates); err != nil {
			return nil, err
		}
	}

	return entity.TimeSeriesRateMap(resp.Rates), nil
}

// get performs one GET request and decodes the JSON body into out. Every
// failure is reported as entity.ErrService.
func (c *FrankfurterClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	c.logger.Debug("Rate service request", map[string]interface{}{
		"url": reqURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", entity.ErrService, err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", entity.ErrService, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Error closing response body", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", entity.ErrService, err)
	}

	c.logger.Debug("Rate service response", map[string]interface{}{
		"url":    reqURL,
		"status": resp.StatusCode,
		"bytes":  len(body),
	})

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: API returned status %d, body: %s", entity.ErrService, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", entity.ErrService, err)
	}

	return nil
}

func validateRates(rates entity.RateMap) error {
	for _, r := range rates {
		if r.Rate <= 0 {
			return fmt.Errorf("%w: invalid exchange rate value %f for %s", entity.ErrService, r.Rate, r.Currency)
		}
	}
	return nil
}

func fallbackCurrencies() []string {
	return append([]string(nil), entity.FallbackCurrencies...)
}
