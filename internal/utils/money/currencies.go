package money

import (
	"sort"
	"strings"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

var currencies = map[string]domain.Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0, GroupSep: ",", DecimalSep: "."},
	"KRW": {CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", Precision: 0, GroupSep: ",", DecimalSep: "."},
	"CAD": {CurrencyCode: "CAD", Symbol: "CA$", Name: "Canadian Dollar", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"NZD": {CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"CHF": {CurrencyCode: "CHF", Symbol: "CHF ", Name: "Swiss Franc", Precision: 2, GroupSep: "'", DecimalSep: "."},
	"CNY": {CurrencyCode: "CNY", Symbol: "CN¥", Name: "Chinese Yuan", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"MXN": {CurrencyCode: "MXN", Symbol: "MX$", Name: "Mexican Peso", Precision: 2, GroupSep: ",", DecimalSep: "."},
	"BRL": {CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real", Precision: 2, GroupSep: ".", DecimalSep: ","},
	"SEK": {CurrencyCode: "SEK", Symbol: " kr", Name: "Swedish Krona", Precision: 2, SymbolAfter: true, GroupSep: " ", DecimalSep: ","},
	"NOK": {CurrencyCode: "NOK", Symbol: " kr", Name: "Norwegian Krone", Precision: 2, SymbolAfter: true, GroupSep: " ", DecimalSep: ","},
	"DKK": {CurrencyCode: "DKK", Symbol: " kr.", Name: "Danish Krone", Precision: 2, SymbolAfter: true, GroupSep: ".", DecimalSep: ","},
	"PLN": {CurrencyCode: "PLN", Symbol: " zł", Name: "Polish Zloty", Precision: 2, SymbolAfter: true, GroupSep: " ", DecimalSep: ","},
}

// fallbackCurrency is used for codes missing from the table.
var fallbackCurrency = domain.Currency{Symbol: "$", Precision: 2, DecimalSep: "."}

// LookupCurrency returns the formatting rules for code.
func LookupCurrency(code string) (domain.Currency, bool) {
	c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// CurrencySymbol returns the display symbol for code, "$" when unknown.
func CurrencySymbol(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return strings.TrimSpace(c.Symbol)
	}
	return fallbackCurrency.Symbol
}

// ListCurrencies returns the known currencies ordered by code.
func ListCurrencies() []domain.Currency {
	list := make([]domain.Currency, 0, len(currencies))
	for _, c := range currencies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CurrencyCode < list[j].CurrencyCode })
	return list
}

// IsKnownCurrency reports whether code has formatting rules.
func IsKnownCurrency(code string) bool {
	_, ok := LookupCurrency(code)
	return ok
}
