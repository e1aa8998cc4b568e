package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// EarningsReportParams defines the query parameters of the earnings report.
// Dates are inclusive calendar days; either end may be omitted.
type EarningsReportParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// CurrencyAmountResponse is an amount and its display form.
type CurrencyAmountResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// CurrencySummaryResponse holds every total of one currency.
type CurrencySummaryResponse struct {
	CurrencyCode string                 `json:"currencyCode"`
	ShiftIncome  CurrencyAmountResponse `json:"shiftIncome"`
	FixedIncome  CurrencyAmountResponse `json:"fixedIncome"`
	OtherIncome  CurrencyAmountResponse `json:"otherIncome"`
	Expenses     CurrencyAmountResponse `json:"expenses"`
	Expected     CurrencyAmountResponse `json:"expected"`
	Net          CurrencyAmountResponse `json:"net"`
}

// EarningsReportResponse represents the earnings report response
type EarningsReportResponse struct {
	From            string                    `json:"from,omitempty"`
	To              string                    `json:"to,omitempty"`
	MixedCurrencies bool                      `json:"mixedCurrencies"`
	Currencies      []CurrencySummaryResponse `json:"currencies"`
}

// ToEarningsReportResponse flattens a summary into one entry per currency.
// To is reported as the last included day.
func ToEarningsReportResponse(s domain.EarningsSummary) EarningsReportResponse {
	res := EarningsReportResponse{
		MixedCurrencies: s.MixedCurrencies,
		Currencies:      make([]CurrencySummaryResponse, 0, len(s.Currencies)),
	}
	if !s.Period.From.IsZero() {
		res.From = s.Period.From.Format(DateLayout)
	}
	if !s.Period.To.IsZero() {
		res.To = s.Period.To.AddDate(0, 0, -1).Format(DateLayout)
	}

	for _, code := range s.Currencies {
		amount := func(t domain.CurrencyTotals) CurrencyAmountResponse {
			v := t[code]
			return CurrencyAmountResponse{Amount: v, Formatted: money.FormatCurrency(v, code)}
		}
		res.Currencies = append(res.Currencies, CurrencySummaryResponse{
			CurrencyCode: code,
			ShiftIncome:  amount(s.ShiftIncome),
			FixedIncome:  amount(s.FixedIncome),
			OtherIncome:  amount(s.OtherIncome),
			Expenses:     amount(s.Expenses),
			Expected:     amount(s.Expected),
			Net:          amount(s.Net),
		})
	}
	return res
}

// ParsePeriod turns inclusive from/to calendar days into a half-open period.
// Empty strings leave that end unbounded.
func ParsePeriod(from, to string) (domain.Period, error) {
	var p domain.Period
	if from != "" {
		d, err := time.Parse(DateLayout, from)
		if err != nil {
			return p, apperrors.NewValidationError(fmt.Sprintf("invalid from date %q", from))
		}
		p.From = d
	}
	if to != "" {
		d, err := time.Parse(DateLayout, to)
		if err != nil {
			return p, apperrors.NewValidationError(fmt.Sprintf("invalid to date %q", to))
		}
		p.To = d.AddDate(0, 0, 1)
	}
	if p.Bounded() && !p.From.Before(p.To) {
		return p, apperrors.NewValidationError("from must not be after to")
	}
	return p, nil
}
