package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToPointer returns a pointer to the given value.
func ToPointer[T any](value T) *T {
	return &value
}

// RoundMoney rounds a monetary value to 2 decimal places using exact
// decimal arithmetic so display values never carry float residue.
func RoundMoney(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// FormatUSD renders a monetary value as "$75,000.00 USD".
func FormatUSD(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s USD", sign, b.String(), fracPart)
}

// FormatPercentage renders a signed percentage with one decimal place.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}
