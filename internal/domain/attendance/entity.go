package attendance

import (
	"time"
)

type Status string

const (
	StatusOnTime    Status = "On time"
	StatusLate      Status = "Late"
	StatusLeftEarly Status = "Left early"
)

// Check-in window, relative to the scheduled shift start.
const (
	EarliestCheckInMinutes = -60
	LatestCheckInMinutes   = 300
	LateAfterMinutes       = 15
)

type Attendance struct {
	ID           int64
	WorkerID     string
	WorkDate     time.Time
	CheckinTime  time.Time
	CheckoutTime *time.Time
	ShiftID      int64

	// Shift window frozen at check-in
	ScheduledStart time.Time
	ScheduledEnd   time.Time

	Status        Status
	HoursWorked   *float64
	OvertimeHours *float64

	// DTO / Join
	ShiftName *string
	Job       *string
	Role      *string
}

// IsOpen reports whether the record is a session that has not been checked out.
func (a *Attendance) IsOpen() bool {
	return a.CheckoutTime == nil
}

// CountsAsWorked reports whether the record counts towards worked days.
func (a *Attendance) CountsAsWorked() bool {
	return a.Status == StatusOnTime || a.Status == StatusLate
}
