package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	"github.com/SscSPs/shiftpay/internal/models"
	"github.com/SscSPs/shiftpay/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for job data.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryWithTx {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryWithTx = (*PgxJobRepository)(nil)

const jobColumns = `job_id, user_id, name, description, pay_type, hourly_rate, daily_rate, monthly_salary,
	currency_code, show_in_fixed_income, color, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveJob inserts a new job.
func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobID, m.UserID, m.Name, m.Description, m.PayType,
		m.HourlyRate, m.DailyRate, m.MonthlySalary,
		m.CurrencyCode, m.ShowInFixedIncome, m.Color, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: job with ID %s already exists", apperrors.ErrDuplicate, m.JobID)
		}
		return fmt.Errorf("failed to save job %s: %w", m.JobID, err)
	}
	return nil
}

// UpdateJob overwrites the mutable columns of a job.
func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)
	query := `
		UPDATE jobs SET
			name = $3, description = $4, pay_type = $5,
			hourly_rate = $6, daily_rate = $7, monthly_salary = $8,
			currency_code = $9, show_in_fixed_income = $10, color = $11, is_active = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE job_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.JobID, m.UserID, m.Name, m.Description, m.PayType,
		m.HourlyRate, m.DailyRate, m.MonthlySalary,
		m.CurrencyCode, m.ShowInFixedIncome, m.Color, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", m.JobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindJobByID retrieves a job by its ID.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1 AND user_id = $2;`
	rows, err := r.Pool.Query(ctx, query, jobID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}
	job := mapping.ToDomainJob(m)
	return &job, nil
}

// FindJobsByIDs retrieves multiple jobs by their IDs.
func (r *PgxJobRepository) FindJobsByIDs(ctx context.Context, userID string, jobIDs []string) (map[string]domain.Job, error) {
	if len(jobIDs) == 0 {
		return map[string]domain.Job{}, nil
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 AND job_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, userID, jobIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by IDs: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	jobs := make(map[string]domain.Job, len(ms))
	for _, m := range ms {
		jobs[m.JobID] = mapping.ToDomainJob(m)
	}
	return jobs, nil
}

// ListJobs retrieves the user's jobs ordered by name.
func (r *PgxJobRepository) ListJobs(ctx context.Context, userID string, includeInactive bool) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1`
	if !includeInactive {
		query += ` AND is_active`
	}
	query += ` ORDER BY name, job_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return mapping.ToDomainJobSlice(ms), nil
}

// DeleteJob removes a job, optionally with all of its shifts.
func (r *PgxJobRepository) DeleteJob(ctx context.Context, userID, jobID string, deleteShifts bool) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if deleteShifts {
		if _, err = tx.Exec(ctx, `DELETE FROM shifts WHERE job_id = $1 AND user_id = $2;`, jobID, userID); err != nil {
			return fmt.Errorf("failed to delete shifts of job %s: %w", jobID, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1 AND user_id = $2;`, jobID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		err = apperrors.ErrNotFound
		return err
	}
	return r.Commit(ctx, tx)
}
