package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrWorkerRoleRequired = errors.New("only workers can check in or out")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrTooEarly           = errors.New("too early for check-in")
	ErrTooLate            = errors.New("check-in denied, more than 5 hours late")

	// Check-out errors
	ErrNoActiveSession = errors.New("no active check-in found")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
