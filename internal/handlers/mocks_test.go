package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) GetJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error) {
	args := m.Called(ctx, userID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobService) CreateJob(ctx context.Context, userID string, req dto.CreateJobRequest) (*domain.Job, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) UpdateJob(ctx context.Context, userID, jobID string, req dto.UpdateJobRequest) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ArchiveJob(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}
func (m *MockJobService) DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) error {
	return m.Called(ctx, userID, jobID, deleteShifts).Error(0)
}

var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) GetShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, userID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) ListShifts(ctx context.Context, userID string, params dto.ListShiftsParams) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, userID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Shift), next, args.Error(2)
}
func (m *MockShiftService) PreviewEarnings(ctx context.Context, userID string, req dto.EarningsPreviewRequest) (*domain.ResolvedEarnings, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedEarnings), args.Error(1)
}
func (m *MockShiftService) CreateShift(ctx context.Context, userID string, intent domain.ShiftEditIntent) (*domain.Shift, error) {
	args := m.Called(ctx, userID, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) UpdateShift(ctx context.Context, userID, shiftID string, intent domain.ShiftEditIntent) (*domain.Shift, error) {
	args := m.Called(ctx, userID, shiftID, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) DeleteShift(ctx context.Context, userID, shiftID string) error {
	return m.Called(ctx, userID, shiftID).Error(0)
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

// --- Mock ActiveShiftService ---
type MockActiveShiftService struct {
	mock.Mock
}

func (m *MockActiveShiftService) CurrentShift(ctx context.Context, userID string, now time.Time) (*domain.ActiveShift, *domain.Countdown, error) {
	args := m.Called(ctx, userID, now)
	var active *domain.ActiveShift
	if args.Get(0) != nil {
		active = args.Get(0).(*domain.ActiveShift)
	}
	var countdown *domain.Countdown
	if args.Get(1) != nil {
		countdown = args.Get(1).(*domain.Countdown)
	}
	return active, countdown, args.Error(2)
}
func (m *MockActiveShiftService) WatchShift(ctx context.Context, userID string, interval time.Duration, onChange func(*domain.ActiveShift)) error {
	return m.Called(ctx, userID, interval, onChange).Error(0)
}

var _ portssvc.ActiveShiftService = (*MockActiveShiftService)(nil)

// --- Mock FinancialRecordService ---
type MockFinancialRecordService struct {
	mock.Mock
}

func (m *MockFinancialRecordService) CreateRecord(ctx context.Context, userID string, req dto.CreateFinancialRecordRequest) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}
func (m *MockFinancialRecordService) ListRecords(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}
func (m *MockFinancialRecordService) DeleteRecord(ctx context.Context, userID, recordID string) error {
	return m.Called(ctx, userID, recordID).Error(0)
}

var _ portssvc.FinancialRecordSvcFacade = (*MockFinancialRecordService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) EarningsSummary(ctx context.Context, userID string, period domain.Period) (*domain.EarningsSummary, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsSummary), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) Format(amount decimal.Decimal, currencyCode string) string {
	return m.Called(amount, currencyCode).String(0)
}
func (m *MockCurrencyService) Parse(input string) decimal.Decimal {
	return m.Called(input).Get(0).(decimal.Decimal)
}
func (m *MockCurrencyService) SyncBuiltinCurrencies(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)
