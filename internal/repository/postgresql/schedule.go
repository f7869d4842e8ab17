package postgresql

import (
	"context"
	"time"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/schedule"
	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `id, business_id, user_id, starts_at, ends_at, note, created_at, updated_at`

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func scanShift(row pgx.Row) (schedule.Shift, error) {
	var s schedule.Shift
	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.UserID,
		&s.StartsAt,
		&s.EndsAt,
		&s.Note,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return schedule.Shift{}, err
	}
	return s, nil
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (business_id, user_id, starts_at, ends_at, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + shiftColumns

	return scanShift(q.QueryRow(ctx, query, s.BusinessID, s.UserID, s.StartsAt, s.EndsAt, s.Note))
}

// GetByID implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	return scanShift(q.QueryRow(ctx, query, id))
}

// Delete implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByBusiness implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.business_id, s.user_id, s.starts_at, s.ends_at, s.note, s.created_at, s.updated_at, u.name
		FROM shifts s
		JOIN users u ON u.id = s.user_id
		WHERE s.business_id = $1 AND s.starts_at < $3 AND s.ends_at > $2
		ORDER BY s.starts_at ASC
	`

	rows, err := q.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(
			&s.ID,
			&s.BusinessID,
			&s.UserID,
			&s.StartsAt,
			&s.EndsAt,
			&s.Note,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.MemberName,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// ListByUser implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ListByUser(ctx context.Context, businessID, userID string, from, to time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE business_id = $1 AND user_id = $2 AND starts_at < $4 AND ends_at > $3
		ORDER BY starts_at ASC
	`

	rows, err := q.Query(ctx, query, businessID, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

const timeOffColumns = `id, business_id, user_id, start_date, end_date, reason, status, decided_by, created_at, updated_at`

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) schedule.TimeOffRepository {
	return &timeOffRepositoryImpl{db: db}
}

func scanTimeOff(row pgx.Row) (schedule.TimeOffRequest, error) {
	var t schedule.TimeOffRequest
	err := row.Scan(
		&t.ID,
		&t.BusinessID,
		&t.UserID,
		&t.StartDate,
		&t.EndDate,
		&t.Reason,
		&t.Status,
		&t.DecidedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return schedule.TimeOffRequest{}, err
	}
	return t, nil
}

// Create implements schedule.TimeOffRepository.
func (r *timeOffRepositoryImpl) Create(ctx context.Context, t schedule.TimeOffRequest) (schedule.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (business_id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timeOffColumns

	return scanTimeOff(q.QueryRow(ctx, query,
		t.BusinessID, t.UserID, t.StartDate, t.EndDate, t.Reason, t.Status,
	))
}

// GetByID implements schedule.TimeOffRepository.
func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeOffColumns + ` FROM time_off_requests WHERE id = $1`

	return scanTimeOff(q.QueryRow(ctx, query, id))
}

// ListByBusiness implements schedule.TimeOffRepository.
func (r *timeOffRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, status *schedule.TimeOffStatus) ([]schedule.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeOffColumns + ` FROM time_off_requests WHERE business_id = $1`
	args := []interface{}{businessID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []schedule.TimeOffRequest
	for rows.Next() {
		t, err := scanTimeOff(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, t)
	}
	return requests, rows.Err()
}

// UpdateStatus implements schedule.TimeOffRepository.
func (r *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, id string, status schedule.TimeOffStatus, decidedBy string) (schedule.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_off_requests
		SET status = $1, decided_by = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + timeOffColumns

	return scanTimeOff(q.QueryRow(ctx, query, status, decidedBy, id))
}
