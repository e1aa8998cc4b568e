package repositories

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ShiftListFilter narrows a shift listing.
type ShiftListFilter struct {
	Period domain.Period
	JobID  *string
	Status *domain.ShiftStatus
}

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a shift owned by userID.
	FindShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error)

	// ListShifts retrieves a page of shifts ordered by date and start time using
	// token-based pagination. It returns the shifts, a token for the next page, and an error.
	ListShifts(ctx context.Context, userID string, filter ShiftListFilter, limit int, nextToken *string) ([]domain.Shift, *string, error)

	// ListShiftsInPeriod retrieves every shift of the user in the period.
	ListShiftsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Shift, error)

	// CountShiftsByJob counts the shifts logged against a job.
	CountShiftsByJob(ctx context.Context, userID, jobID string) (int, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	SaveShift(ctx context.Context, shift domain.Shift) error
	DeleteShift(ctx context.Context, userID, shiftID string) error

	// FindShiftForUpdate reads and row-locks a shift inside tx.
	FindShiftForUpdate(ctx context.Context, tx pgx.Tx, userID, shiftID string) (*domain.Shift, error)

	// UpdateShiftTx writes every column of the shift inside tx.
	UpdateShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}

// ShiftRepositoryWithTx extends ShiftRepositoryFacade with transaction capabilities
type ShiftRepositoryWithTx interface {
	ShiftRepositoryFacade
	TransactionManager
}
