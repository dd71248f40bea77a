package invoicepdf

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyFormatter renders monetary amounts for one document currency:
// symbol-prefixed, grouped, always two fraction digits. The printer locale
// is fixed to English because render output must be byte-deterministic.
type currencyFormatter struct {
	prefix  string
	printer *message.Printer
}

func newCurrencyFormatter(c Currency) *currencyFormatter {
	prefix := c.Symbol
	if prefix == "" {
		prefix = c.Code + " "
	}
	return &currencyFormatter{
		prefix:  prefix,
		printer: message.NewPrinter(language.English),
	}
}

// Format renders an amount, e.g. 1234.5 -> "$1,234.50". The sign precedes
// the currency symbol.
func (f *currencyFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	if v < 0 {
		return f.printer.Sprintf("-%s%v", f.prefix, number.Decimal(-v, number.Scale(2)))
	}
	return f.printer.Sprintf("%s%v", f.prefix, number.Decimal(v, number.Scale(2)))
}

// formatRate renders a percentage rate without trailing zeros: 10 -> "10",
// 7.50 -> "7.5".
func formatRate(r decimal.Decimal) string {
	s := r.Round(2).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
