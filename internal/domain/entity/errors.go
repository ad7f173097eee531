package entity

import "errors"

// Error taxonomy for the conversion flow. Call sites wrap these with context
// using fmt.Errorf("%w: ...") and callers discriminate with errors.Is.
var (
	// ErrInvalidAmount indicates the amount text is not a finite number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrService indicates the rate service failed or returned unusable data
	ErrService = errors.New("rate service error")

	// ErrMissingData indicates a historical series lacks the requested currency on some date
	ErrMissingData = errors.New("missing rate data")

	// ErrMalformedPair indicates a favorite pair string is not BASE-TARGET
	ErrMalformedPair = errors.New("malformed currency pair")

	// ErrInvalidCurrency indicates a code that is not three letters
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrNothingToExport indicates no conversion table is currently displayed
	ErrNothingToExport = errors.New("no table to export")
)
