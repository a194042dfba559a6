package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatCount renders a quantity with thousands separators, e.g. "12,340".
func formatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// formatPercent renders a percentage with one decimal, e.g. "97.5%".
func formatPercent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(1) + "%"
}
