// Package memory keeps every repository in process memory. It backs the
// service tests and the DB_DRIVER=memory development mode.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	shifts      map[int64]shift.Shift
	nextShiftID int64

	users map[string]user.User

	attendances      map[int64]attendance.Attendance
	nextAttendanceID int64

	leaveRequests map[string]leave.LeaveRequest
}

func NewStore() *Store {
	return &Store{
		shifts:        make(map[int64]shift.Shift),
		users:         make(map[string]user.User),
		attendances:   make(map[int64]attendance.Attendance),
		leaveRequests: make(map[string]leave.LeaveRequest),
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
