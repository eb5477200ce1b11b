package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.shift_name, to_char(s.start_time, 'HH24:MI:SS'), to_char(s.end_time, 'HH24:MI:SS')`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var (
		s          shift.Shift
		start, end string
	)
	if err := row.Scan(&s.ID, &s.Name, &start, &end); err != nil {
		return shift.Shift{}, err
	}

	var err error
	if s.StartTime, err = clock.ParseTimeOfDay(start); err != nil {
		return shift.Shift{}, fmt.Errorf("invalid start_time for shift %d: %w", s.ID, err)
	}
	if s.EndTime, err = clock.ParseTimeOfDay(end); err != nil {
		return shift.Shift{}, fmt.Errorf("invalid end_time for shift %d: %w", s.ID, err)
	}
	return s, nil
}

// GetByWorkerID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByWorkerID(ctx context.Context, workerID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM users u
		JOIN shifts s ON s.id = u.shift_id
		WHERE u.worker_id = $1 AND u.deleted_at IS NULL
	`

	s, err := scanShift(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by worker_id: %w", err)
	}
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE s.id = $1 FOR SHARE`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM shifts s ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]shift.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (shift_name, start_time, end_time)
		VALUES ($1, $2::time, $3::time)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, s.Name, s.StartTime.String(), s.EndTime.String()).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return s, nil
}
