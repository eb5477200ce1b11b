package shift

import "context"

type ShiftRepository interface {
	// GetByWorkerID resolves the shift assigned to a worker.
	// Returns ErrShiftNotFound when the worker does not exist or has no shift.
	GetByWorkerID(ctx context.Context, workerID string) (Shift, error)
	GetByID(ctx context.Context, id int64) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Create(ctx context.Context, s Shift) (Shift, error)
}
