package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

func NewUserRepository(db *database.DB, loc *time.Location) user.UserRepository {
	return &userRepositoryImpl{db: db, loc: loc}
}

const userColumns = `u.worker_id, u.password_hash, u.role, u.job, u.email, u.shift_id, u.created_at, s.shift_name`

func (r *userRepositoryImpl) scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.WorkerID,
		&u.PasswordHash,
		&u.Role,
		&u.Job,
		&u.Email,
		&u.ShiftID,
		&u.CreatedAt,
		&u.ShiftName,
	)
	if err != nil {
		return user.User{}, err
	}
	u.CreatedAt = clock.Civil(u.CreatedAt, r.loc)
	return u, nil
}

// GetByWorkerID implements user.UserRepository.
func (r *userRepositoryImpl) GetByWorkerID(ctx context.Context, workerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN shifts s ON s.id = u.shift_id
		WHERE u.worker_id = $1 AND u.deleted_at IS NULL
	`

	u, err := r.scanUser(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by worker_id: %w", err)
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (worker_id, password_hash, role, job, email, shift_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::timestamp)
		ON CONFLICT (worker_id) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			job = EXCLUDED.job,
			email = EXCLUDED.email,
			shift_id = EXCLUDED.shift_id,
			created_at = EXCLUDED.created_at,
			deleted_at = NULL
		WHERE users.deleted_at IS NOT NULL
	`

	cmdTag, err := q.Exec(ctx, query,
		newUser.WorkerID,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Job,
		newUser.Email,
		newUser.ShiftID,
		clock.FormatDateTime(newUser.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrWorkerIDExists
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, workerID string, deletedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET deleted_at = $2::timestamp
		WHERE worker_id = $1 AND deleted_at IS NULL
	`

	cmdTag, err := q.Exec(ctx, query, workerID, clock.FormatDateTime(deletedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListWorkers implements user.UserRepository.
func (r *userRepositoryImpl) ListWorkers(ctx context.Context) ([]user.User, error) {
	return r.listWorkers(ctx, "")
}

// ListWorkersByShiftName implements user.UserRepository.
func (r *userRepositoryImpl) ListWorkersByShiftName(ctx context.Context, shiftName string) ([]user.User, error) {
	return r.listWorkers(ctx, shiftName)
}

func (r *userRepositoryImpl) listWorkers(ctx context.Context, shiftName string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN shifts s ON s.id = u.shift_id
		WHERE u.role = $1 AND u.deleted_at IS NULL
	`
	args := []interface{}{user.RoleWorker}

	if shiftName != "" {
		query += " AND s.shift_name = $2"
		args = append(args, shiftName)
	}
	query += " ORDER BY u.worker_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	workers := make([]user.User, 0)
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}
	return workers, nil
}

// CountWorkers implements user.UserRepository.
func (r *userRepositoryImpl) CountWorkers(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1 AND deleted_at IS NULL`, user.RoleWorker).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return count, nil
}
