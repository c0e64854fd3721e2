// Package core provides money parsing and handling utilities.
//
// Amounts are kept as exact decimals; rounding happens only when a value is
// rendered for display.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to a strictly positive amount.
//
// Surrounding whitespace is ignored. Returns ErrInvalidAmount for anything
// that is not a number or that is zero or negative.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("100")   -> 100, nil
//	ParseAmount("0")     -> ErrInvalidAmount
//	ParseAmount("-5")    -> ErrInvalidAmount
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatMoney renders an amount with two decimals, e.g. "100.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
