package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatPrice renders an amount followed by its currency code, e.g. "640.00 EUR".
func FormatPrice(amount float64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return FormatMoney(amount)
	}
	return FormatMoney(amount) + " " + currency
}

// RoundCents rounds to two decimals so totals do not carry float noise.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
