package entity

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DisplayDecimals is the number of decimals shown for amounts
const DisplayDecimals = 2

// FormatAmount renders a value the way it is shown on screen and in exports.
// Values keep full precision internally; only the display is rounded. Halves
// round up on the shortest decimal form of v, so 2.675 shows as 2.68.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', DisplayDecimals, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(DisplayDecimals)
}
