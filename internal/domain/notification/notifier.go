package notification

import "context"

// ShiftReminder asks a worker who has not checked in yet to do so.
type ShiftReminder struct {
	To        string
	WorkerID  string
	ShiftName string
	WorkDate  string
}

// LeaveRequestNotice tells the admin mailbox about a new leave request.
type LeaveRequestNotice struct {
	To       string
	WorkerID string
	Reason   string
	FromDate string
	ToDate   string
}

// Notifier delivers outbound messages. Callers treat delivery as best effort.
type Notifier interface {
	SendShiftReminder(ctx context.Context, reminder ShiftReminder) error
	SendLeaveRequestNotice(ctx context.Context, notice LeaveRequestNotice) error
}
