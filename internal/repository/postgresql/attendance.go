package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

func NewAttendanceRepository(db *database.DB, loc *time.Location) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db, loc: loc}
}

const attendanceColumns = `
	a.id, a.worker_id, a.work_date, a.checkin_time, a.checkout_time, a.shift_id,
	a.scheduled_start, a.scheduled_end, a.status, a.hours_worked, a.overtime_hours
`

func (r *attendanceRepositoryImpl) scanAttendance(row pgx.Row, extra ...interface{}) (attendance.Attendance, error) {
	var a attendance.Attendance
	dest := []interface{}{
		&a.ID,
		&a.WorkerID,
		&a.WorkDate,
		&a.CheckinTime,
		&a.CheckoutTime,
		&a.ShiftID,
		&a.ScheduledStart,
		&a.ScheduledEnd,
		&a.Status,
		&a.HoursWorked,
		&a.OvertimeHours,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return attendance.Attendance{}, err
	}

	a.WorkDate = clock.Civil(a.WorkDate, r.loc)
	a.CheckinTime = clock.Civil(a.CheckinTime, r.loc)
	a.ScheduledStart = clock.Civil(a.ScheduledStart, r.loc)
	a.ScheduledEnd = clock.Civil(a.ScheduledEnd, r.loc)
	if a.CheckoutTime != nil {
		checkout := clock.Civil(*a.CheckoutTime, r.loc)
		a.CheckoutTime = &checkout
	}
	return a, nil
}

// FindOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) FindOpenSession(ctx context.Context, workerID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.worker_id = $1 AND a.checkout_time IS NULL
		ORDER BY a.checkin_time DESC
		LIMIT 1
	`

	a, err := r.scanAttendance(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}
	return &a, nil
}

// FindByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) FindByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.worker_id = $1 AND a.work_date = $2::date
	`

	a, err := r.scanAttendance(q.QueryRow(ctx, query, workerID, clock.FormatDate(workDate)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by date: %w", err)
	}
	return &a, nil
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Insert(ctx context.Context, att attendance.Attendance) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			worker_id, work_date, checkin_time, shift_id, scheduled_start, scheduled_end, status
		) VALUES ($1, $2::date, $3::timestamp, $4, $5::timestamp, $6::timestamp, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		att.WorkerID,
		clock.FormatDate(att.WorkDate),
		clock.FormatDateTime(att.CheckinTime),
		att.ShiftID,
		clock.FormatDateTime(att.ScheduledStart),
		clock.FormatDateTime(att.ScheduledEnd),
		att.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, attendance.ErrAlreadyCheckedIn
		}
		return 0, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return id, nil
}

// UpdateCheckout implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateCheckout(ctx context.Context, id int64, update attendance.CheckoutUpdate) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET checkout_time = $1::timestamp, hours_worked = $2, overtime_hours = $3, status = $4
		WHERE id = $5 AND checkout_time IS NULL
	`

	cmdTag, err := q.Exec(ctx, query,
		clock.FormatDateTime(update.CheckoutTime),
		update.HoursWorked,
		update.OvertimeHours,
		update.Status,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update checkout: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, s.shift_name, u.job, u.role
		FROM attendance a
		JOIN users u ON u.worker_id = a.worker_id
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		query += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.FromDate != nil {
		query += fmt.Sprintf(" AND a.work_date >= $%d::date", argIdx)
		args = append(args, clock.FormatDate(*filter.FromDate))
		argIdx++
	}
	if filter.ToDate != nil {
		query += fmt.Sprintf(" AND a.work_date <= $%d::date", argIdx)
		args = append(args, clock.FormatDate(*filter.ToDate))
		argIdx++
	}

	query += " ORDER BY a.work_date DESC, a.checkin_time ASC, a.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			shiftName, job *string
			role           string
		)
		a, err := r.scanAttendance(rows, &shiftName, &job, &role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.ShiftName = shiftName
		a.Job = job
		a.Role = &role
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}
	return records, nil
}

// ListWorkerIDsByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListWorkerIDsByDate(ctx context.Context, workDate time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT worker_id FROM attendance WHERE work_date = $1::date ORDER BY worker_id`

	rows, err := q.Query(ctx, query, clock.FormatDate(workDate))
	if err != nil {
		return nil, fmt.Errorf("failed to query present workers: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan worker_id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountOpenSessions(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE checkout_time IS NULL`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open sessions: %w", err)
	}
	return count, nil
}

// CountByWorkDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByWorkDate(ctx context.Context, workDate time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE work_date = $1::date`, clock.FormatDate(workDate)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by date: %w", err)
	}
	return count, nil
}
