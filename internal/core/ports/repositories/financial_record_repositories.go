package repositories

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// FinancialRecordReader defines read operations for income and expense records
type FinancialRecordReader interface {
	FindRecordByID(ctx context.Context, userID, recordID string) (*domain.FinancialRecord, error)

	// ListRecordsInPeriod retrieves the user's records dated within period, oldest first.
	ListRecordsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error)
}

// FinancialRecordWriter defines write operations for income and expense records
type FinancialRecordWriter interface {
	SaveRecord(ctx context.Context, record domain.FinancialRecord) error
	DeleteRecord(ctx context.Context, userID, recordID string) error
}

// FinancialRecordRepositoryFacade combines all record-related repository interfaces
type FinancialRecordRepositoryFacade interface {
	FinancialRecordReader
	FinancialRecordWriter
}
