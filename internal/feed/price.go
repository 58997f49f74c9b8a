package feed

import (
	"strings"

	"github.com/shopspring/decimal"
)

// standard VAT rate for pet food in the upstream catalog
var vatFactor = decimal.NewFromFloat(1.23)

// GrossPrice derives the gross price from a net decimal string. Returns ""
// when the input is not a decimal; callers keep prices as strings end to end.
func GrossPrice(net string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(net))
	if err != nil {
		return ""
	}
	return d.Mul(vatFactor).Round(2).StringFixed(2)
}

// validAmount reports whether s parses as a decimal amount.
func validAmount(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}
