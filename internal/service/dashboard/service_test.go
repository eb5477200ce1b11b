package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)

	for _, u := range []user.User{
		{WorkerID: "W001", Role: user.RoleWorker},
		{WorkerID: "W002", Role: user.RoleWorker},
		{WorkerID: "A001", Role: user.RoleAdmin},
	} {
		require.NoError(t, userRepo.Create(ctx, u))
	}

	today := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	closed := yesterday.Add(17 * time.Hour)

	_, err := attendanceRepo.Insert(ctx, attendance.Attendance{WorkerID: "W001", WorkDate: yesterday, CheckinTime: yesterday.Add(9 * time.Hour), CheckoutTime: &closed, Status: attendance.StatusOnTime})
	require.NoError(t, err)
	_, err = attendanceRepo.Insert(ctx, attendance.Attendance{WorkerID: "W001", WorkDate: today, CheckinTime: today.Add(9 * time.Hour), Status: attendance.StatusOnTime})
	require.NoError(t, err)

	require.NoError(t, leaveRepo.Create(ctx, leave.LeaveRequest{ID: "a", WorkerID: "W002", Status: leave.StatusPending}))
	require.NoError(t, leaveRepo.Create(ctx, leave.LeaveRequest{ID: "b", WorkerID: "W002", Status: leave.StatusApproved}))

	svc := NewDashboardService(userRepo, attendanceRepo, leaveRepo, clock.NewFixedClock(today.Add(11*time.Hour)))

	// Act
	resp, err := svc.GetDashboard(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", resp.Date)
	assert.Equal(t, int64(2), resp.Workers)
	assert.Equal(t, int64(1), resp.CheckedInToday)
	assert.Equal(t, int64(1), resp.OpenSessions)
	assert.Equal(t, int64(1), resp.PendingLeaveRequests)
}
