package flows

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	numberPrinter = message.NewPrinter(language.English)
	titleCaser    = cases.Title(language.English)
)

// FormatRupees renders an amount with the rupee sign and thousands
// separators: 500000 becomes "₹500,000", 1234.5 becomes "₹1,234.50".
func FormatRupees(amount float64) string {
	return "₹" + FormatNumber(amount)
}

// FormatNumber groups thousands and drops the fraction for whole numbers.
func FormatNumber(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return numberPrinter.Sprintf("%d", int64(value))
	}
	return numberPrinter.Sprintf("%.2f", value)
}

// FormatPercent renders a value that is already a percentage with one decimal.
func FormatPercent(value float64) string {
	return numberPrinter.Sprintf("%.1f%%", value)
}

// FormatDecimal renders value with one decimal place.
func FormatDecimal(value float64) string {
	return numberPrinter.Sprintf("%.1f", value)
}

// TitleCase upper-cases the first letter of each word ("improving" -> "Improving").
func TitleCase(value string) string {
	return titleCaser.String(strings.TrimSpace(value))
}
