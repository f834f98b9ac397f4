// Package money formats monetary and plain numeric values for display.
//
// Amounts stay unrounded float64s through the whole pipeline; these helpers
// apply the only rounding that ever happens, at render time.
package money

import "strconv"

// Format renders an amount with the currency symbol and two decimal places,
// e.g. Format("₹", 100) == "₹100.00".
func Format(symbol string, amount float64) string {
	return symbol + strconv.FormatFloat(amount, 'f', 2, 64)
}

// Bare renders a number the way dynamic languages print it: no trailing
// zeros, no decimal point for integral values. Used for quantities.
func Bare(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
