// Package money formats integer cent amounts for display.
package money

import "github.com/shopspring/decimal"

// Format renders cents as a dollar string, e.g. 21000 -> "$210.00".
func Format(cents int64) string {
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FromDollars converts a whole-dollar amount (as typed on a price slider) to cents.
func FromDollars(dollars int64) int64 {
	return decimal.NewFromInt(dollars).Shift(2).IntPart()
}
