package services

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// Format renders an amount using the currency's display rules.
	Format(amount decimal.Decimal, currencyCode string) string

	// Parse reads user-typed money text; unparsable input yields zero.
	Parse(input string) decimal.Decimal
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// SyncBuiltinCurrencies upserts the built-in formatting table.
	SyncBuiltinCurrencies(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
