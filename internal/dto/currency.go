package dto

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode     string `json:"currencyCode"`
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	Precision        int    `json:"precision"`
	SymbolAfter      bool   `json:"symbolAfter"`
	GroupSeparator   string `json:"groupSeparator"`
	DecimalSeparator string `json:"decimalSeparator"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:     curr.CurrencyCode,
		Symbol:           curr.Symbol,
		Name:             curr.Name,
		Precision:        curr.Precision,
		SymbolAfter:      curr.SymbolAfter,
		GroupSeparator:   curr.GroupSep,
		DecimalSeparator: curr.DecimalSep,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// FormatCurrencyRequest asks for an amount to be rendered in a currency.
// Unknown codes are accepted and use the generic format.
type FormatCurrencyRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode" binding:"required,max=3"`
}

// FormatCurrencyResponse is the rendered amount.
type FormatCurrencyResponse struct {
	Formatted string `json:"formatted"`
	Symbol    string `json:"symbol"`
}

// ParseCurrencyRequest carries user-typed money text.
type ParseCurrencyRequest struct {
	Input string `json:"input"`
}

// ParseCurrencyResponse is the parsed amount; unparsable input yields 0.
type ParseCurrencyResponse struct {
	Amount decimal.Decimal `json:"amount"`
}
