package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	"github.com/SscSPs/shiftpay/internal/models"
	"github.com/SscSPs/shiftpay/internal/utils/mapping"
	"github.com/SscSPs/shiftpay/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryWithTx {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShiftRepositoryWithTx = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, user_id, job_id, shift_date, start_time, end_time, is_full_day,
	scheduled_hours, actual_hours, is_overnight, status, shift_type, notes,
	pay_override_type, holiday_fixed_amount, custom_hourly_rate, custom_daily_rate, override_currency,
	is_holiday, holiday_multiplier, holiday_fixed_rate,
	actual_earnings, earnings_currency, earnings_manual_override,
	created_at, created_by, last_updated_at, last_updated_by`

const shiftOrder = ` ORDER BY shift_date, start_time, shift_id`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func shiftArgs(m models.Shift) []any {
	return []any{
		m.ShiftID, m.UserID, m.JobID, m.ShiftDate, m.StartTime, m.EndTime, m.IsFullDay,
		m.ScheduledHours, m.ActualHours, m.IsOvernight, m.Status, m.ShiftType, m.Notes,
		m.PayOverrideType, m.HolidayFixedAmount, m.CustomHourlyRate, m.CustomDailyRate, m.OverrideCurrency,
		m.IsHoliday, m.HolidayMultiplier, m.HolidayFixedRate,
		m.ActualEarnings, m.EarningsCurrency, m.EarningsManualOverride,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveShift inserts a new shift.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	args := shiftArgs(m)
	query := `INSERT INTO shifts (` + shiftColumns + `) VALUES (` + placeholders(len(args)) + `);`

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: shift with ID %s already exists", apperrors.ErrDuplicate, m.ShiftID)
		}
		return fmt.Errorf("failed to save shift %s: %w", m.ShiftID, err)
	}
	return nil
}

// UpdateShiftTx rewrites a shift row inside an open transaction.
func (r *PgxShiftRepository) UpdateShiftTx(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query, args := shiftUpdateStatement(m)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shift %s: %w", m.ShiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// shiftUpdateStatement builds the UPDATE for every mutable column. Each
// placeholder is numbered by its position in args.
func shiftUpdateStatement(m models.Shift) (string, []any) {
	cols := strings.Split(shiftColumns, ",")
	values := shiftArgs(m)

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		col = strings.TrimSpace(col)
		switch col {
		case "shift_id", "user_id", "created_at", "created_by":
			continue
		}
		args = append(args, values[i])
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, m.ShiftID, m.UserID)
	where := ` WHERE shift_id = $` + strconv.Itoa(len(args)-1) + ` AND user_id = $` + strconv.Itoa(len(args)) + `;`
	return `UPDATE shifts SET ` + strings.Join(sets, ", ") + where, args
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error) {
	return r.findShift(ctx, r.Pool, `SELECT `+shiftColumns+` FROM shifts WHERE shift_id = $1 AND user_id = $2;`, shiftID, userID)
}

// FindShiftForUpdate locks the shift row until tx ends.
func (r *PgxShiftRepository) FindShiftForUpdate(ctx context.Context, tx pgx.Tx, userID, shiftID string) (*domain.Shift, error) {
	return r.findShift(ctx, tx, `SELECT `+shiftColumns+` FROM shifts WHERE shift_id = $1 AND user_id = $2 FOR UPDATE;`, shiftID, userID)
}

func (r *PgxShiftRepository) findShift(ctx context.Context, q querier, query, shiftID, userID string) (*domain.Shift, error) {
	rows, err := q.Query(ctx, query, shiftID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shift by ID %s: %w", shiftID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift by ID %s: %w", shiftID, err)
	}
	shift := mapping.ToDomainShift(m)
	return &shift, nil
}

// ListShifts retrieves a page of shifts for the user.
func (r *PgxShiftRepository) ListShifts(ctx context.Context, userID string, filter portsrepo.ShiftListFilter, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	where, args := periodClause("shift_date", userID, filter.Period)
	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		where += ` AND job_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeShiftToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		// Tuple comparison is concise and efficient in Postgres
		args = append(args, cursor.Date, cursor.StartTime, cursor.ShiftID)
		n := len(args)
		where += fmt.Sprintf(` AND (shift_date, start_time, shift_id) > ($%d, $%d, $%d)`, n-2, n-1, n)
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + shiftColumns + ` FROM shifts ` + where + shiftOrder + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query shifts for user "+userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan shifts for user "+userID, err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeShiftToken(pagination.ShiftCursor{
			Date:      last.ShiftDate,
			StartTime: last.StartTime,
			ShiftID:   last.ShiftID,
		})
		nextTokenVal = &token
		ms = ms[:limit]
	}

	return mapping.ToDomainShiftSlice(ms), nextTokenVal, nil
}

// ListShiftsInPeriod retrieves all of the user's shifts in the period.
func (r *PgxShiftRepository) ListShiftsInPeriod(ctx context.Context, userID string, period domain.Period) ([]domain.Shift, error) {
	where, args := periodClause("shift_date", userID, period)
	rows, err := r.Pool.Query(ctx, `SELECT `+shiftColumns+` FROM shifts `+where+shiftOrder+`;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts for user %s: %w", userID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		return nil, fmt.Errorf("failed to scan shifts: %w", err)
	}
	return mapping.ToDomainShiftSlice(ms), nil
}

// CountShiftsByJob counts the shifts logged against a job.
func (r *PgxShiftRepository) CountShiftsByJob(ctx context.Context, userID, jobID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM shifts WHERE user_id = $1 AND job_id = $2;`, userID, jobID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts of job %s: %w", jobID, err)
	}
	return count, nil
}

// DeleteShift removes a shift.
func (r *PgxShiftRepository) DeleteShift(ctx context.Context, userID, shiftID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shifts WHERE shift_id = $1 AND user_id = $2;`, shiftID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// periodClause builds a WHERE clause scoping rows to the user and the
// half-open period on dateCol. $1 is always the user id.
func periodClause(dateCol, userID string, period domain.Period) (string, []any) {
	args := []any{userID}
	where := `WHERE user_id = $1`
	if !period.From.IsZero() {
		args = append(args, period.From)
		where += ` AND ` + dateCol + ` >= $` + strconv.Itoa(len(args))
	}
	if !period.To.IsZero() {
		args = append(args, period.To)
		where += ` AND ` + dateCol + ` < $` + strconv.Itoa(len(args))
	}
	return where, args
}

func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(ps, ", ")
}
