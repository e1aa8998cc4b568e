package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyTotals maps a currency code to an amount. Different currencies
// are never added together.
type CurrencyTotals map[string]decimal.Decimal

// Add accumulates amount into the bucket for code.
func (t CurrencyTotals) Add(code string, amount decimal.Decimal) {
	t[code] = t[code].Add(amount)
}

// EarningsSummary is the per-currency income report for a period.
type EarningsSummary struct {
	Period          Period         `json:"period"`
	ShiftIncome     CurrencyTotals `json:"shiftIncome"`
	FixedIncome     CurrencyTotals `json:"fixedIncome"`
	OtherIncome     CurrencyTotals `json:"otherIncome"`
	Expenses        CurrencyTotals `json:"expenses"`
	Expected        CurrencyTotals `json:"expected"`
	Net             CurrencyTotals `json:"net"`
	Currencies      []string       `json:"currencies"`
	MixedCurrencies bool           `json:"mixedCurrencies"`
}
