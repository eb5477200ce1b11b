package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	user.UserRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	clock clock.Clock
}

func NewDashboardService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		UserRepository:         userRepo,
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRequestRepo,
		clock:                  clk,
	}
}

// GetDashboard returns today's counters, one query per goroutine.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	today := clock.DateOf(s.clock.Now())
	resp := dashboard.DashboardResponse{Date: clock.FormatDate(today)}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.UserRepository.CountWorkers(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count workers: %w", err)
		}
		resp.Workers = n
		return nil
	})

	g.Go(func() error {
		n, err := s.AttendanceRepository.CountByWorkDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count today's check-ins: %w", err)
		}
		resp.CheckedInToday = n
		return nil
	})

	g.Go(func() error {
		n, err := s.AttendanceRepository.CountOpenSessions(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count open sessions: %w", err)
		}
		resp.OpenSessions = n
		return nil
	})

	g.Go(func() error {
		n, err := s.LeaveRequestRepository.CountByStatus(gCtx, leave.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending leave requests: %w", err)
		}
		resp.PendingLeaveRequests = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return resp, nil
}
