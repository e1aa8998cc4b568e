package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency service backed by the currencies table.
// Codes missing from the table fall back to the built-in formatting rules.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err == nil {
		return currency, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to get currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	if builtin, ok := money.LookupCurrency(code); ok {
		return &builtin, nil
	}
	return nil, apperrors.NewNotFoundError("currency " + code)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if len(currencies) == 0 {
		return money.ListCurrencies(), nil
	}
	return currencies, nil
}

func (s *currencyService) Format(amount decimal.Decimal, currencyCode string) string {
	return money.FormatCurrency(amount, currencyCode)
}

func (s *currencyService) Parse(input string) decimal.Decimal {
	return money.ParseCurrency(input)
}

// SyncBuiltinCurrencies upserts every built-in currency so the table always
// carries the formatting rules the server renders with.
func (s *currencyService) SyncBuiltinCurrencies(ctx context.Context) error {
	builtins := money.ListCurrencies()
	for _, c := range builtins {
		if err := s.currencyRepo.SaveCurrency(ctx, c); err != nil {
			s.LogError(ctx, err, "Failed to sync currency", slog.String("currency_code", c.CurrencyCode))
			return fmt.Errorf("failed to sync currency %s: %w", c.CurrencyCode, err)
		}
	}
	s.LogInfo(ctx, "Built-in currencies synced", slog.Int("count", len(builtins)))
	return nil
}
