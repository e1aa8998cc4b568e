package repositories

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a job owned by userID.
	FindJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error)

	// FindJobsByIDs retrieves several jobs keyed by JobID. Unknown ids are skipped.
	FindJobsByIDs(ctx context.Context, userID string, jobIDs []string) (map[string]domain.Job, error)

	// ListJobs retrieves the user's jobs, archived ones only when includeInactive is set.
	ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	SaveJob(ctx context.Context, job domain.Job) error
	UpdateJob(ctx context.Context, job domain.Job) error

	// DeleteJob removes the job. When deleteShifts is set its shifts go with it
	// in the same transaction.
	DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}

// JobRepositoryWithTx extends JobRepositoryFacade with transaction capabilities
type JobRepositoryWithTx interface {
	JobRepositoryFacade
	TransactionManager
}
