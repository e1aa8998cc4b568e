package services_test

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryWithTx = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockShiftRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShiftRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, userID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShifts(ctx context.Context, userID string, filter portsrepo.ShiftListFilter, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Shift), returnedNextToken, args.Error(2)
}

func (m *MockShiftRepository) ListShiftsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Shift, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) CountShiftsByJob(ctx context.Context, userID, jobID string) (int, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) DeleteShift(ctx context.Context, userID, shiftID string) error {
	args := m.Called(ctx, userID, shiftID)
	return args.Error(0)
}

func (m *MockShiftRepository) FindShiftForUpdate(ctx context.Context, tx pgx.Tx, userID, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, tx, userID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) UpdateShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	args := m.Called(ctx, tx, shift)
	return args.Error(0)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepositoryFacade = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) FindJobsByIDs(ctx context.Context, userID string, jobIDs []string) (map[string]domain.Job, error) {
	args := m.Called(ctx, userID, jobIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error) {
	args := m.Called(ctx, userID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) error {
	args := m.Called(ctx, userID, jobID, deleteShifts)
	return args.Error(0)
}

// --- Mock FinancialRecordRepository ---
type MockFinancialRecordRepository struct {
	mock.Mock
}

var _ portsrepo.FinancialRecordRepositoryFacade = (*MockFinancialRecordRepository)(nil)

func (m *MockFinancialRecordRepository) FindRecordByID(ctx context.Context, userID, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, userID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) ListRecordsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFinancialRecordRepository) DeleteRecord(ctx context.Context, userID, recordID string) error {
	args := m.Called(ctx, userID, recordID)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}
