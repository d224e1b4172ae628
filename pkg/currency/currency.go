// Package currency implements the USD to KHR conversion used on receipts
// and cart totals. Amounts are carried as USD cents; riel has no minor
// unit, so converted amounts round to whole riel.
package currency

import (
	"github.com/shopspring/decimal"

	"github.com/jjpos/jjpos-api/pkg/apperror"
)

// DefaultExchangeRate is the fallback KHR-per-USD rate. It is a UI default,
// not a business invariant: every transaction may carry its own rate.
const DefaultExchangeRate = 4100

// ToRiel converts a USD amount in cents to whole riel at the given
// KHR-per-USD rate, rounding to zero decimal places with ties away from
// zero. The rate must be positive.
func ToRiel(usdCents int64, rate decimal.Decimal) (int64, error) {
	if !rate.IsPositive() {
		return 0, apperror.NewValidationError([]apperror.FieldError{
			{Field: "exchange_rate", Message: "must be greater than zero"},
		})
	}
	usd := decimal.New(usdCents, -2)
	return usd.Mul(rate).Round(0).IntPart(), nil
}

// CentsFromDollars converts a decimal dollar amount to cents, rounding to
// the nearest cent with ties away from zero.
func CentsFromDollars(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Shift(2).Round(0).IntPart()
}

// DollarsFromCents converts a cent amount to a decimal dollar value for
// display and JSON responses.
func DollarsFromCents(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}
