package services

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// ReportingService defines operations for generating earnings reports
type ReportingService interface {
	// EarningsSummary totals shift pay, fixed income, other income and
	// expenses for the period, one bucket per currency.
	EarningsSummary(ctx context.Context, userID string, period domain.Period) (*domain.EarningsSummary, error)
}
