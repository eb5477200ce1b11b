package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID        string
	WorkerID  string
	Reason    string
	FromDate  time.Time
	ToDate    time.Time
	Status    Status
	CreatedAt time.Time
	DecidedAt *time.Time
}

// IsPending reports whether the request still awaits an admin decision.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// IsDecision reports whether s is a status an admin may set.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}
