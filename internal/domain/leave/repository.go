package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) error
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// List returns all requests, newest first.
	List(ctx context.Context) ([]LeaveRequest, error)
	// Decide moves a Pending request to status and returns the number of rows changed.
	// Requests that are missing or already decided are left untouched.
	Decide(ctx context.Context, id string, status Status, decidedAt time.Time) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
