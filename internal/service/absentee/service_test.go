package absentee

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/absentee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu        sync.Mutex
	failFor   map[string]bool
	reminders []notification.ShiftReminder
}

func (n *fakeNotifier) SendShiftReminder(ctx context.Context, reminder notification.ShiftReminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, reminder)
	if n.failFor[reminder.WorkerID] {
		return errors.New("mailbox unavailable")
	}
	return nil
}

func (n *fakeNotifier) SendLeaveRequestNotice(ctx context.Context, notice notification.LeaveRequestNotice) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestAbsentees(t *testing.T) {
	assigned := []user.User{{WorkerID: "W001"}, {WorkerID: "W002"}, {WorkerID: "W003"}}

	got := Absentees(assigned, []string{"W002", "W999"})

	require.Len(t, got, 2)
	assert.Equal(t, "W001", got[0].WorkerID)
	assert.Equal(t, "W003", got[1].WorkerID)
	assert.Empty(t, Absentees(assigned, []string{"W001", "W002", "W003"}))
	assert.Empty(t, Absentees(nil, nil))
}

func TestAbsenteeService_Scan(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	shiftRepo := memory.NewShiftRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)

	morning, err := shiftRepo.Create(ctx, shift.Shift{Name: "Shift 1", StartTime: clock.MustParseTimeOfDay("09:00"), EndTime: clock.MustParseTimeOfDay("17:00")})
	require.NoError(t, err)
	night, err := shiftRepo.Create(ctx, shift.Shift{Name: "Shift 2", StartTime: clock.MustParseTimeOfDay("22:00"), EndTime: clock.MustParseTimeOfDay("06:00")})
	require.NoError(t, err)

	users := []user.User{
		{WorkerID: "W001", Role: user.RoleWorker, ShiftID: &morning.ID, Email: strPtr("w001@example.com")},
		{WorkerID: "W002", Role: user.RoleWorker, ShiftID: &morning.ID, Email: strPtr("w002@example.com")},
		{WorkerID: "W003", Role: user.RoleWorker, ShiftID: &morning.ID},
		{WorkerID: "W004", Role: user.RoleWorker, ShiftID: &morning.ID, Email: strPtr("w004@example.com")},
		{WorkerID: "W005", Role: user.RoleWorker, ShiftID: &night.ID, Email: strPtr("w005@example.com")},
		{WorkerID: "A001", Role: user.RoleAdmin, ShiftID: &morning.ID, Email: strPtr("admin@example.com")},
	}
	for _, u := range users {
		require.NoError(t, userRepo.Create(ctx, u))
	}

	today := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	_, err = attendanceRepo.Insert(ctx, attendance.Attendance{
		WorkerID:    "W004",
		WorkDate:    today,
		CheckinTime: today.Add(9 * time.Hour),
		ShiftID:     morning.ID,
		Status:      attendance.StatusOnTime,
	})
	require.NoError(t, err)

	notifier := &fakeNotifier{failFor: map[string]bool{"W001": true}}
	clk := clock.NewFixedClock(today.Add(9*time.Hour + 30*time.Minute))
	svc := NewAbsenteeService(userRepo, attendanceRepo, notifier, clk)

	// Act
	result, err := svc.ScanToday(ctx, "Shift 1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", result.WorkDate)
	require.Len(t, result.Absent, 3)
	assert.Equal(t, "W001", result.Absent[0].WorkerID)
	assert.Equal(t, "W002", result.Absent[1].WorkerID)
	assert.Equal(t, "W003", result.Absent[2].WorkerID)

	// A failed send for W001 does not stop W002 from being notified
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 1, result.NoEmail)
	require.Len(t, notifier.reminders, 2)
	assert.Equal(t, "w002@example.com", notifier.reminders[1].To)
	assert.Equal(t, "Shift 1", notifier.reminders[1].ShiftName)
	assert.Equal(t, "2025-03-14", notifier.reminders[1].WorkDate)
}

func TestAbsenteeService_Scan_ExplicitDateAndValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewFixedClock(time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC))
	svc := NewAbsenteeService(memory.NewUserRepository(store), memory.NewAttendanceRepository(store), &fakeNotifier{}, clk)

	result, err := svc.Scan(ctx, absentee.ScanRequest{ShiftName: "Shift 9", Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", result.WorkDate)
	assert.Empty(t, result.Absent)

	_, err = svc.Scan(ctx, absentee.ScanRequest{})
	assert.Error(t, err)

	_, err = svc.Scan(ctx, absentee.ScanRequest{ShiftName: "Shift 1", Date: "10-03-2025"})
	assert.Error(t, err)
}
