package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestArithmetic(t *testing.T) {
	assert.True(t, Add(d("0.1"), d("0.2")).Equal(d("0.3")), "0.1 + 0.2 should be exactly 0.3")
	assert.True(t, Subtract(d("1.00"), d("0.99")).Equal(d("0.01")))
	assert.True(t, Multiply(d("7.5"), d("20")).Equal(d("150")))
	assert.True(t, Divide(d("10"), d("4")).Equal(d("2.5")))
	assert.True(t, Sum(d("1.1"), d("2.2"), d("3.3")).Equal(d("6.6")))
	assert.True(t, Sum().IsZero())
}

func TestDivide_ByZeroReturnsZero(t *testing.T) {
	assert.True(t, Divide(d("10"), decimal.Zero).IsZero())
}

func TestDivide_KeepsTwentyPlaces(t *testing.T) {
	got := Divide(d("1"), d("3"))
	assert.Equal(t, "0.33333333333333333333", got.String())
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{"2.345", 2, "2.35"},
		{"2.344", 2, "2.34"},
		{"1.005", 2, "1.01"},
		{"-1.005", 2, "-1.01"},
		{"12.5", 0, "13"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(d(tt.in), tt.places).String())
		})
	}
	assert.Equal(t, "225", RoundMoney(d("225.0000")).String())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"usd grouped", "1234.5", "USD", "$1,234.50"},
		{"usd small", "0.1", "usd", "$0.10"},
		{"usd millions", "1234567.891", "USD", "$1,234,567.89"},
		{"negative", "-42", "USD", "-$42.00"},
		{"eur", "99.999", "EUR", "€100.00"},
		{"jpy has no decimals", "1234.5", "JPY", "¥1,235"},
		{"sek symbol after", "1234.5", "SEK", "1 234,50 kr"},
		{"brl separators", "1234.5", "BRL", "R$1.234,50"},
		{"unknown falls back", "1234.5", "XYZ", "$1234.50"},
		{"empty code falls back", "3", "", "$3.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(d(tt.amount), tt.code))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(d("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(d("12.3456"), 0))
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.50", "1234.5"},
		{"€ 99", "99"},
		{"-12.30 USD", "-12.3"},
		{"abc", "0"},
		{"", "0"},
		{"1.2.3", "0"},
		{"--5", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, ParseCurrency(tt.in).Equal(d(tt.want)), "ParseCurrency(%q) = %s", tt.in, ParseCurrency(tt.in))
		})
	}
}

func TestCurrencyLookup(t *testing.T) {
	c, ok := LookupCurrency("jpy")
	assert.True(t, ok)
	assert.Equal(t, 0, c.Precision)

	assert.Equal(t, "kr", CurrencySymbol("SEK"))
	assert.Equal(t, "$", CurrencySymbol("ZZZ"))
	assert.False(t, IsKnownCurrency("ZZZ"))

	list := ListCurrencies()
	assert.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].CurrencyCode, list[i].CurrencyCode)
	}
}
