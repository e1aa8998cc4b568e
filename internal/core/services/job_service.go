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
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type jobService struct {
	BaseService
	jobRepo   portsrepo.JobRepositoryFacade
	shiftRepo portsrepo.ShiftReader
}

// JobServiceOption is a functional option for configuring the job service
type JobServiceOption func(*jobService)

// WithJobShiftReader lets DeleteJob refuse to orphan shifts.
func WithJobShiftReader(repo portsrepo.ShiftReader) JobServiceOption {
	return func(s *jobService) {
		s.shiftRepo = repo
	}
}

// NewJobService creates a new job service with the provided options
func NewJobService(repo portsrepo.JobRepositoryFacade, options ...JobServiceOption) portssvc.JobSvcFacade {
	svc := &jobService{jobRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) GetJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("job " + jobID)
		}
		s.LogError(ctx, err, "Failed to get job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListJobs(ctx, userID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (s *jobService) CreateJob(ctx context.Context, userID string, req dto.CreateJobRequest) (*domain.Job, error) {
	now := s.Now()
	job := domain.Job{
		JobID:             uuid.NewString(),
		UserID:            userID,
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		PayType:           req.PayType,
		HourlyRate:        req.HourlyRate,
		DailyRate:         req.DailyRate,
		MonthlySalary:     req.MonthlySalary,
		CurrencyCode:      strings.ToUpper(req.CurrencyCode),
		ShowInFixedIncome: req.ShowInFixedIncome,
		Color:             req.Color,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		s.LogError(ctx, err, "Failed to save job", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	s.LogInfo(ctx, "Job created",
		slog.String("job_id", job.JobID),
		slog.String("pay_type", string(job.PayType)))
	return &job, nil
}

// UpdateJob changes the pay profile. Stored shift earnings are snapshots
// and keep their old amounts.
func (s *jobService) UpdateJob(ctx context.Context, userID, jobID string, req dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.GetJobByID(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		job.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.PayType != nil {
		job.PayType = *req.PayType
	}
	if req.HourlyRate != nil {
		job.HourlyRate = req.HourlyRate
	}
	if req.DailyRate != nil {
		job.DailyRate = req.DailyRate
	}
	if req.MonthlySalary != nil {
		job.MonthlySalary = req.MonthlySalary
	}
	if req.CurrencyCode != nil {
		job.CurrencyCode = strings.ToUpper(*req.CurrencyCode)
	}
	if req.ShowInFixedIncome != nil {
		job.ShowInFixedIncome = *req.ShowInFixedIncome
	}
	if req.Color != nil {
		job.Color = *req.Color
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if err := validateJob(*job); err != nil {
		return nil, err
	}
	job.LastUpdatedAt = s.Now()
	job.LastUpdatedBy = userID

	if err := s.jobRepo.UpdateJob(ctx, *job); err != nil {
		s.LogError(ctx, err, "Failed to update job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *jobService) ArchiveJob(ctx context.Context, userID, jobID string) error {
	inactive := false
	_, err := s.UpdateJob(ctx, userID, jobID, dto.UpdateJobRequest{IsActive: &inactive})
	return err
}

func (s *jobService) DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) error {
	if !deleteShifts && s.shiftRepo != nil {
		count, err := s.shiftRepo.CountShiftsByJob(ctx, userID, jobID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count job shifts", slog.String("job_id", jobID))
			return fmt.Errorf("failed to count job shifts: %w", err)
		}
		if count > 0 {
			return apperrors.NewConflictError(fmt.Sprintf("job %s still has %d shifts; archive it or delete its shifts", jobID, count))
		}
	}

	if err := s.jobRepo.DeleteJob(ctx, userID, jobID, deleteShifts); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("job " + jobID)
		}
		s.LogError(ctx, err, "Failed to delete job", slog.String("job_id", jobID))
		return fmt.Errorf("failed to delete job: %w", err)
	}
	s.LogInfo(ctx, "Job deleted", slog.String("job_id", jobID), slog.Bool("delete_shifts", deleteShifts))
	return nil
}

func validateJob(j domain.Job) error {
	if j.Name == "" {
		return apperrors.NewValidationError("job name is required")
	}
	if !j.PayType.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown pay type %q", j.PayType))
	}
	for _, r := range []*decimal.Decimal{j.HourlyRate, j.DailyRate, j.MonthlySalary} {
		if r != nil && r.IsNegative() {
			return apperrors.NewValidationError("rates must not be negative")
		}
	}
	switch j.PayType {
	case domain.PayHourly:
		if j.HourlyRate == nil {
			return apperrors.NewValidationError("hourly jobs need an hourly rate")
		}
	case domain.PayDaily:
		if j.DailyRate == nil {
			return apperrors.NewValidationError("daily jobs need a daily rate")
		}
	}
	return nil
}
