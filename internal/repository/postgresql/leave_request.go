package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

func NewLeaveRequestRepository(db *database.DB, loc *time.Location) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db, loc: loc}
}

const leaveRequestColumns = `id::text, worker_id, reason, from_date, to_date, status, created_at, decided_at`

func (r *leaveRequestRepositoryImpl) scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID,
		&req.WorkerID,
		&req.Reason,
		&req.FromDate,
		&req.ToDate,
		&req.Status,
		&req.CreatedAt,
		&req.DecidedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.FromDate = clock.Civil(req.FromDate, r.loc)
	req.ToDate = clock.Civil(req.ToDate, r.loc)
	req.CreatedAt = clock.Civil(req.CreatedAt, r.loc)
	if req.DecidedAt != nil {
		decided := clock.Civil(*req.DecidedAt, r.loc)
		req.DecidedAt = &decided
	}
	return req, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, worker_id, reason, from_date, to_date, status, created_at)
		VALUES ($1::uuid, $2, $3, $4::date, $5::date, $6, $7::timestamp)
	`

	_, err := q.Exec(ctx, query,
		req.ID,
		req.WorkerID,
		req.Reason,
		clock.FormatDate(req.FromDate),
		clock.FormatDate(req.ToDate),
		req.Status,
		clock.FormatDateTime(req.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Compare as text so a malformed id is a miss rather than a cast error.
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id::text = $1`

	req, err := r.scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		req, err := r.scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave requests: %w", err)
	}
	return requests, nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, decidedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_at = $2::timestamp
		WHERE id::text = $3 AND status = $4
	`

	cmdTag, err := q.Exec(ctx, query, status, clock.FormatDateTime(decidedAt), id, leave.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}
