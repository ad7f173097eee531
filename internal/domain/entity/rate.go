package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Rate is the price of one unit of the base currency in Currency
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// RateMap holds rates relative to one implicit base currency at one point in
// time. Entries keep the order in which the rate service listed them.
type RateMap []Rate

// Get returns the rate for a currency
func (m RateMap) Get(currency string) (float64, bool) {
	for _, r := range m {
		if r.Currency == currency {
			return r.Rate, true
		}
	}
	return 0, false
}

// Currencies returns the currency codes in map order
func (m RateMap) Currencies() []string {
	codes := make([]string, len(m))
	for i, r := range m {
		codes[i] = r.Currency
	}
	return codes
}

// UnmarshalJSON decodes a JSON object of code -> rate, keeping key order
func (m *RateMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rates: expected object, got %v", tok)
	}

	rates := make(RateMap, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("rates: unexpected key %v", keyTok)
		}

		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("rates: value for %s: %w", key, err)
		}
		rates = append(rates, Rate{Currency: key, Rate: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = rates
	return nil
}

// TimeSeriesRateMap maps an ISO-8601 date (YYYY-MM-DD) to the rates on that date
type TimeSeriesRateMap map[string]RateMap
