package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByWorkerID(ctx context.Context, workerID string) (User, error)
	// Create adds a user. A removed user's worker_id may be registered again.
	Create(ctx context.Context, newUser User) error
	// Delete marks an active user removed and returns the number of users affected.
	// Attendance records and leave requests are kept.
	Delete(ctx context.Context, workerID string, deletedAt time.Time) (int64, error)
	ListWorkers(ctx context.Context) ([]User, error)
	// ListWorkersByShiftName returns users with role=worker assigned to the named shift.
	ListWorkersByShiftName(ctx context.Context, shiftName string) ([]User, error)
	CountWorkers(ctx context.Context) (int64, error)
}
