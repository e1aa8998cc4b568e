package services

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/dto"
)

// FinancialRecordSvcFacade manages standalone income and expense records
type FinancialRecordSvcFacade interface {
	CreateRecord(ctx context.Context, userID string, req dto.CreateFinancialRecordRequest) (*domain.FinancialRecord, error)
	ListRecords(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error)
	DeleteRecord(ctx context.Context, userID, recordID string) error
}
