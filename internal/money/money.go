// Package money formats amounts for display.
//
// Balances and settlements are computed and stored in float64. Rounding to
// cents happens only when amounts are shown to people.
package money

import "github.com/shopspring/decimal"

// Format renders amount as a dollar string with two decimals, e.g. "$40.00"
// or "-$3.33". Values that round to zero are shown without a sign.
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsZero() {
		return "$0.00"
	}
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
