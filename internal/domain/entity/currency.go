package entity

import "strings"

// FallbackCurrencies is returned when the currency catalog cannot be fetched
var FallbackCurrencies = []string{"USD", "EUR", "INR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY"}

// NormalizeCode upper-cases and trims a currency code as typed by the user
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether code is syntactically a currency code (three
// uppercase ASCII letters). It does not check the code against the live catalog.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
