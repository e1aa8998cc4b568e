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

type PgxFinancialRecordRepository struct {
	BaseRepository
}

func newPgxFinancialRecordRepository(pool *pgxpool.Pool) portsrepo.FinancialRecordRepositoryFacade {
	return &PgxFinancialRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialRecordRepositoryFacade = (*PgxFinancialRecordRepository)(nil)

const recordColumns = `record_id, user_id, job_id, record_type, amount, currency_code, category, description,
	record_date, status, created_at, created_by, last_updated_at, last_updated_by`

// SaveRecord inserts a new income or expense record.
func (r *PgxFinancialRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	m := mapping.ToModelFinancialRecord(record)
	query := `
		INSERT INTO financial_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.UserID, m.JobID, m.RecordType, m.Amount, m.CurrencyCode, m.Category, m.Description,
		m.RecordDate, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: record with ID %s already exists", apperrors.ErrDuplicate, m.RecordID)
		}
		return fmt.Errorf("failed to save financial record %s: %w", m.RecordID, err)
	}
	return nil
}

// FindRecordByID retrieves a record by its ID.
func (r *PgxFinancialRecordRepository) FindRecordByID(ctx context.Context, userID, recordID string) (*domain.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE record_id = $1 AND user_id = $2;`
	rows, err := r.Pool.Query(ctx, query, recordID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find financial record %s: %w", recordID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FinancialRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find financial record %s: %w", recordID, err)
	}
	d := mapping.ToDomainFinancialRecord(m)
	return &d, nil
}

// ListRecordsInPeriod retrieves the user's records, oldest first.
func (r *PgxFinancialRecordRepository) ListRecordsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error) {
	where, args := periodClause("record_date", userID, period)
	query := `SELECT ` + recordColumns + ` FROM financial_records ` + where + ` ORDER BY record_date, record_id;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial records for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinancialRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan financial records: %w", err)
	}
	return mapping.ToDomainFinancialRecordSlice(ms), nil
}

// DeleteRecord removes a record.
func (r *PgxFinancialRecordRepository) DeleteRecord(ctx context.Context, userID, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM financial_records WHERE record_id = $1 AND user_id = $2;`, recordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete financial record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
