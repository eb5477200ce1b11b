package attendance

import (
	"context"
	"time"
)

// CheckoutUpdate holds the fields written together when a session is closed.
type CheckoutUpdate struct {
	CheckoutTime  time.Time
	HoursWorked   float64
	OvertimeHours float64
	Status        Status
}

// AttendanceFilter narrows List results. Nil fields are ignored; dates are inclusive work dates.
type AttendanceFilter struct {
	WorkerID *string
	FromDate *time.Time
	ToDate   *time.Time
}

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// FindOpenSession returns the worker's most recent record without a checkout, or nil.
	FindOpenSession(ctx context.Context, workerID string) (*Attendance, error)

	// FindByWorkerAndDate returns the worker's record for a work date, or nil.
	FindByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*Attendance, error)

	// Insert stores a new record and returns its id.
	// A second record for the same (worker, work date) or a second open session fails with ErrAlreadyCheckedIn.
	Insert(ctx context.Context, att Attendance) (int64, error)

	// UpdateCheckout closes exactly one open record and returns the number of rows affected.
	UpdateCheckout(ctx context.Context, id int64, update CheckoutUpdate) (int64, error)

	// List returns records joined with the worker's job and role,
	// ordered by work date descending then check-in time ascending.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	ListWorkerIDsByDate(ctx context.Context, workDate time.Time) ([]string, error)
	CountOpenSessions(ctx context.Context) (int64, error)
	CountByWorkDate(ctx context.Context, workDate time.Time) (int64, error)
}
