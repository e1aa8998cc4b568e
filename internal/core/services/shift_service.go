package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/utils/earnings"
	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fullDayMarker is stored as both clock times of a full-day entry.
const fullDayMarker = "00:00"

type shiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftRepositoryWithTx
	jobRepo   portsrepo.JobReader
}

// ShiftServiceOption is a functional option for configuring the shift service
type ShiftServiceOption func(*shiftService)

// WithShiftClock replaces the wall clock used for audit timestamps.
func WithShiftClock(clock shifttime.Clock) ShiftServiceOption {
	return func(s *shiftService) {
		s.Clock = clock
	}
}

// NewShiftService creates a new shift service with the provided options
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryWithTx, jobRepo portsrepo.JobReader, options ...ShiftServiceOption) portssvc.ShiftSvcFacade {
	svc := &shiftService{
		shiftRepo: shiftRepo,
		jobRepo:   jobRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

func (s *shiftService) GetShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, userID, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("shift " + shiftID)
		}
		s.LogError(ctx, err, "Failed to get shift", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) ListShifts(ctx context.Context, userID string, params dto.ListShiftsParams) ([]domain.Shift, *string, error) {
	period, err := dto.ParsePeriod(params.From, params.To)
	if err != nil {
		return nil, nil, err
	}
	filter := portsrepo.ShiftListFilter{Period: period, JobID: params.JobID}
	if params.Status != nil {
		status := domain.ShiftStatus(*params.Status)
		filter.Status = &status
	}

	shifts, next, err := s.shiftRepo.ListShifts(ctx, userID, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts", slog.String("user_id", userID))
		return nil, nil, err
	}
	if shifts == nil {
		shifts = []domain.Shift{}
	}
	return shifts, next, nil
}

// PreviewEarnings prices the form the way a create would, minus manual
// amounts. A nil result means the inputs cannot be priced.
func (s *shiftService) PreviewEarnings(ctx context.Context, userID string, req dto.EarningsPreviewRequest) (*domain.ResolvedEarnings, error) {
	job, err := s.lookupJob(ctx, userID, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.IsFixedIncome() {
		return nil, nil
	}

	in := domain.PayInput{
		ActualHours:       req.ActualHours,
		ScheduledHours:    req.ScheduledHours,
		ShiftType:         req.ShiftType,
		IsHoliday:         req.IsHoliday,
		HolidayMultiplier: req.HolidayMultiplier,
		HolidayFixedRate:  req.HolidayFixedRate,
		Override:          domain.NoOverride,
	}
	if in.ShiftType == "" {
		in.ShiftType = domain.ShiftWork
	}
	if o := req.PayOverride; o != nil && o.Type != domain.OverrideNone {
		in.Override = domain.PayOverride{Type: o.Type, Amount: o.Amount, CurrencyCode: o.CurrencyCode}
	}
	if in.ScheduledHours == nil && req.StartTime != nil && req.EndTime != nil {
		hours, err := deriveHours(*req.StartTime, *req.EndTime)
		if err != nil {
			return nil, err
		}
		in.ScheduledHours = &hours
	}
	return earnings.Resolve(in, job), nil
}

func (s *shiftService) CreateShift(ctx context.Context, userID string, intent domain.ShiftEditIntent) (*domain.Shift, error) {
	job, err := s.lookupJob(ctx, userID, intent.Patch.JobID)
	if err != nil {
		return nil, err
	}

	draft := intent.Patch.Apply(domain.Shift{ShiftType: domain.ShiftWork, PayOverride: domain.NoOverride})
	if err := prepareTimes(&intent, draft); err != nil {
		return nil, err
	}

	now := s.Now()
	shift := intent.Patch.Apply(domain.Shift{
		ShiftID:     uuid.NewString(),
		UserID:      userID,
		ShiftType:   domain.ShiftWork,
		Status:      domain.StatusPlanned,
		PayOverride: domain.NoOverride,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	})
	shift.IsOvernight = overnight(shift)
	if err := validateShift(shift); err != nil {
		return nil, err
	}
	shift.EarningsSnapshot = earnings.ApplySnapshotPolicy(nil, intent, job)

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		s.LogError(ctx, err, "Failed to save shift", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}
	s.LogInfo(ctx, "Shift created",
		slog.String("shift_id", shift.ShiftID),
		slog.String("status", string(shift.Status)))
	return &shift, nil
}

// UpdateShift runs the edit under a row lock so concurrent edits of the
// same shift cannot interleave between read and write.
func (s *shiftService) UpdateShift(ctx context.Context, userID, shiftID string, intent domain.ShiftEditIntent) (result *domain.Shift, err error) {
	tx, err := s.shiftRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := s.shiftRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back shift update", slog.String("shift_id", shiftID))
			}
		}
	}()

	existing, err := s.shiftRepo.FindShiftForUpdate(ctx, tx, userID, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("shift " + shiftID)
		}
		s.LogError(ctx, err, "Failed to load shift for update", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}

	merged := intent.Patch.Apply(*existing)
	job, err := s.lookupJob(ctx, userID, merged.JobID)
	if err != nil {
		return nil, err
	}
	if timesChanged(intent.Patch) {
		if err = prepareTimes(&intent, merged); err != nil {
			return nil, err
		}
	}

	updated := intent.Patch.Apply(*existing)
	updated.IsOvernight = overnight(updated)
	if err = validateShift(updated); err != nil {
		return nil, err
	}
	updated.EarningsSnapshot = earnings.ApplySnapshotPolicy(existing, intent, job)
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	if err = s.shiftRepo.UpdateShiftTx(ctx, tx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update shift", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	if err = s.shiftRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit shift update", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to commit shift update: %w", err)
	}

	s.LogInfo(ctx, "Shift updated",
		slog.String("shift_id", shiftID),
		slog.Bool("earnings_manual_override", updated.EarningsManualOverride))
	return &updated, nil
}

func (s *shiftService) DeleteShift(ctx context.Context, userID, shiftID string) error {
	if err := s.shiftRepo.DeleteShift(ctx, userID, shiftID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("shift " + shiftID)
		}
		s.LogError(ctx, err, "Failed to delete shift", slog.String("shift_id", shiftID))
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	s.LogInfo(ctx, "Shift deleted", slog.String("shift_id", shiftID))
	return nil
}

// lookupJob loads the referenced job. A nil or empty id means no job; an
// id the user does not own is a validation error.
func (s *shiftService) lookupJob(ctx context.Context, userID string, jobID *string) (*domain.Job, error) {
	if jobID == nil || *jobID == "" {
		return nil, nil
	}
	job, err := s.jobRepo.FindJobByID(ctx, userID, *jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("job %s does not exist", *jobID))
		}
		s.LogError(ctx, err, "Failed to load job", slog.String("job_id", *jobID))
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return job, nil
}

func timesChanged(p domain.ShiftPatch) bool {
	return p.StartTime != nil || p.EndTime != nil || p.IsFullDay != nil
}

// prepareTimes normalizes the clock fields of draft into the patch: the
// full-day marker, the overnight flag, and scheduled hours derived from the
// times when the caller did not send a value.
func prepareTimes(intent *domain.ShiftEditIntent, draft domain.Shift) error {
	p := &intent.Patch
	if draft.IsFullDay {
		marker := fullDayMarker
		p.StartTime, p.EndTime = &marker, &marker
		return nil
	}

	start, err := shifttime.ParseTimeOfDay(draft.StartTime)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid start time %q", draft.StartTime))
	}
	end, err := shifttime.ParseTimeOfDay(draft.EndTime)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid end time %q", draft.EndTime))
	}
	if p.ScheduledHours == nil || p.ScheduledHours.Value == nil {
		hours := shifttime.DeriveScheduledHours(start, end)
		p.ScheduledHours = &domain.DecimalChange{Value: &hours}
	}
	return nil
}

func deriveHours(startText, endText string) (decimal.Decimal, error) {
	start, err := shifttime.ParseTimeOfDay(startText)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("invalid start time %q", startText))
	}
	end, err := shifttime.ParseTimeOfDay(endText)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("invalid end time %q", endText))
	}
	return shifttime.DeriveScheduledHours(start, end), nil
}

// overnight reports whether a timed entry ends on the next calendar day.
func overnight(s domain.Shift) bool {
	if s.IsFullDay {
		return false
	}
	start, err := shifttime.ParseTimeOfDay(s.StartTime)
	if err != nil {
		return false
	}
	end, err := shifttime.ParseTimeOfDay(s.EndTime)
	if err != nil {
		return false
	}
	return shifttime.IsOvernight(start, end)
}

// validateShift checks the merged entry before it is stored.
func validateShift(s domain.Shift) error {
	if s.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	for _, h := range []*decimal.Decimal{s.ScheduledHours, s.ActualHours} {
		if h != nil && (h.IsNegative() || h.GreaterThan(decimal.NewFromInt(24))) {
			return apperrors.NewValidationError("hours must be between 0 and 24")
		}
	}
	for _, r := range []*decimal.Decimal{s.HolidayMultiplier, s.HolidayFixedRate} {
		if r != nil && r.IsNegative() {
			return apperrors.NewValidationError("holiday rates must not be negative")
		}
	}
	if s.PayOverride.Type != domain.OverrideNone && s.PayOverride.Amount.IsNegative() {
		return apperrors.NewValidationError("pay override amount must not be negative")
	}
	return nil
}
