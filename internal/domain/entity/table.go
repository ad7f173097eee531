package entity

import "fmt"

// TableRow is one line of a multi-currency conversion table
type TableRow struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// ConversionTable is an amount converted into every currency the service knows.
// It is rebuilt on every query and never merged with an earlier table.
type ConversionTable struct {
	Base   string     `json:"base"`
	Amount float64    `json:"amount"`
	Date   string     `json:"date"`
	Rows   []TableRow `json:"rows"`
}

// TrendPoint is one plotted sample of a historical rate series
type TrendPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// Trend is a date-ordered rate series for one currency pair
type Trend struct {
	Base      string       `json:"base"`
	Target    string       `json:"target"`
	Days      int          `json:"days"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Points    []TrendPoint `json:"points"`
}

// Title is the caption shown above the plot
func (t *Trend) Title() string {
	return fmt.Sprintf("%s to %s - Last %d Days", t.Base, t.Target, t.Days)
}
