// internal/app/currency.go
package app

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"RUB": "₽",
	"KRW": "₩",
	"JPY": "¥",
}

// Currencies without minor units.
var zeroDecimalCurrencies = map[string]bool{
	"KRW": true,
	"JPY": true,
}

// FormatAmount renders a monetary amount for message bodies: symbol prefix
// when the currency is known (code suffix otherwise), thousands grouping, and
// two decimal places except for zero-decimal currencies.
func FormatAmount(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	places := int32(2)
	if zeroDecimalCurrencies[currency] {
		places = 0
	}

	s := amount.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	grouped := groupThousands(intPart)

	if sym, ok := currencySymbols[currency]; ok {
		return sign + sym + grouped + fracPart
	}
	return sign + grouped + fracPart + " " + currency
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
