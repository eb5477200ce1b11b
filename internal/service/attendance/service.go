package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	shift.ShiftRepository
	clock clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		ShiftRepository:      shiftRepo,
		clock:                clk,
	}
}

// roundHours converts d to hours, rounded half away from zero to 2 decimals.
func roundHours(d time.Duration) float64 {
	return decimal.NewFromFloat(d.Hours()).Round(2).InexactFloat64()
}

// classifyCheckIn applies the check-in window to the minutes elapsed since the scheduled start.
func classifyCheckIn(diffMinutes float64, s shift.Shift) (attendance.Status, error) {
	switch {
	case diffMinutes < attendance.EarliestCheckInMinutes:
		return "", fmt.Errorf("%w, %s starts at %s", attendance.ErrTooEarly, s.Name, s.StartTime)
	case diffMinutes > attendance.LatestCheckInMinutes:
		return "", fmt.Errorf("%w for the %s shift, please contact your supervisor", attendance.ErrTooLate, s.Name)
	case diffMinutes > attendance.LateAfterMinutes:
		return attendance.StatusLate, nil
	default:
		return attendance.StatusOnTime, nil
	}
}

// settleCheckOut derives the final status and overtime for a session closed at now.
func settleCheckOut(now time.Time, session attendance.Attendance) (attendance.Status, float64) {
	switch {
	case now.After(session.ScheduledEnd):
		return session.Status, roundHours(now.Sub(session.ScheduledEnd))
	case now.Before(session.ScheduledEnd):
		return attendance.StatusLeftEarly, 0
	default:
		return session.Status, 0
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if !user.HasPermission(user.Role(req.Role), user.PermissionAttendanceCheckIn) {
		return attendance.CheckInResponse{}, attendance.ErrWorkerRoleRequired
	}
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}
	now := s.clock.Now()

	assigned, err := s.ShiftRepository.GetByWorkerID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return attendance.CheckInResponse{}, shift.ErrShiftNotFound
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to resolve shift: %w", err)
	}

	shiftStart, shiftEnd := assigned.Window(now)
	workDate := clock.DateOf(shiftStart)

	// An overnight session from the previous day may still be open after midnight
	openSession, err := s.AttendanceRepository.FindOpenSession(ctx, req.WorkerID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if openSession != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	existing, err := s.AttendanceRepository.FindByWorkerAndDate(ctx, req.WorkerID, workDate)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status, err := classifyCheckIn(now.Sub(shiftStart).Minutes(), assigned)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	newAttendance := attendance.Attendance{
		WorkerID:       req.WorkerID,
		WorkDate:       workDate,
		CheckinTime:    now,
		ShiftID:        assigned.ID,
		ScheduledStart: shiftStart,
		ScheduledEnd:   shiftEnd,
		Status:         status,
	}

	id, err := s.AttendanceRepository.Insert(ctx, newAttendance)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("Worker checked in",
		"attendance_id", id,
		"worker_id", req.WorkerID,
		"shift", assigned.Name,
		"work_date", clock.FormatDate(workDate),
		"status", status,
	)

	return attendance.CheckInResponse{
		Message:     fmt.Sprintf("Check-in successful (%s)", assigned.Name),
		ShiftName:   assigned.Name,
		Status:      status,
		CheckinTime: clock.FormatDateTime(now),
		WorkDate:    clock.FormatDate(workDate),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if !user.HasPermission(user.Role(req.Role), user.PermissionAttendanceCheckIn) {
		return attendance.CheckOutResponse{}, attendance.ErrWorkerRoleRequired
	}
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}
	now := s.clock.Now()

	session, err := s.AttendanceRepository.FindOpenSession(ctx, req.WorkerID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if session == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoActiveSession
	}

	hoursWorked := roundHours(now.Sub(session.CheckinTime))
	status, overtime := settleCheckOut(now, *session)

	affected, err := s.AttendanceRepository.UpdateCheckout(ctx, session.ID, attendance.CheckoutUpdate{
		CheckoutTime:  now,
		HoursWorked:   hoursWorked,
		OvertimeHours: overtime,
		Status:        status,
	})
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	if affected == 0 {
		// Closed by a concurrent request between read and write
		return attendance.CheckOutResponse{}, attendance.ErrAttendanceNotFound
	}

	slog.Info("Worker checked out",
		"attendance_id", session.ID,
		"worker_id", req.WorkerID,
		"hours_worked", hoursWorked,
		"overtime_hours", overtime,
		"status", status,
	)

	return attendance.CheckOutResponse{
		Message:       "Check-out successful",
		CheckinTime:   clock.FormatDateTime(session.CheckinTime),
		CheckoutTime:  clock.FormatDateTime(now),
		HoursWorked:   hoursWorked,
		OvertimeHours: overtime,
		Status:        status,
	}, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, workerID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{WorkerID: &workerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// GetReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetReport(ctx context.Context, req attendance.ReportRequest) ([]attendance.AttendanceResponse, error) {
	filter := attendance.AttendanceFilter{}
	if user.Role(req.Role) == user.RoleWorker && req.WorkerID != "" {
		filter.WorkerID = &req.WorkerID
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance report: %w", err)
	}
	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses
}
