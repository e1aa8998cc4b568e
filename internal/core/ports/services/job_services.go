package services

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/dto"
)

// JobReaderSvc defines read operations for jobs
type JobReaderSvc interface {
	GetJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error)
	ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error)
}

// JobWriterSvc defines write operations for jobs
type JobWriterSvc interface {
	CreateJob(ctx context.Context, userID string, req dto.CreateJobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, userID, jobID string, req dto.UpdateJobRequest) (*domain.Job, error)

	// ArchiveJob hides a job from default listings without touching its shifts.
	ArchiveJob(ctx context.Context, userID, jobID string) error

	// DeleteJob fails with apperrors.ErrConflict while shifts reference the
	// job, unless deleteShifts is set.
	DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) error
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
