package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with the symbol, precision and grouping of
// currencyCode. Unknown codes render as "$" and two decimals, ungrouped.
// Example: 1234.5 USD -> "$1,234.50", 1234.5 JPY -> "¥1,235".
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	c, ok := LookupCurrency(currencyCode)
	if !ok {
		c = fallbackCurrency
	}

	rounded := amount.Round(int32(c.Precision))
	negative := rounded.IsNegative()
	digits := rounded.Abs().StringFixed(int32(c.Precision))

	intPart, fracPart, _ := strings.Cut(digits, ".")
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if !c.SymbolAfter {
		b.WriteString(c.Symbol)
	}
	b.WriteString(group(intPart, c.GroupSep))
	if c.Precision > 0 {
		b.WriteString(c.DecimalSep)
		b.WriteString(fracPart)
	}
	if c.SymbolAfter {
		b.WriteString(c.Symbol)
	}
	return b.String()
}

// FormatWithPrecision formats an amount with the given precision and no symbol.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

func group(intPart, sep string) string {
	if sep == "" || len(intPart) <= 3 {
		return intPart
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String()
}

// ParseCurrency strips everything except digits, '-' and '.' and parses the
// rest. Unparsable input yields zero.
func ParseCurrency(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
