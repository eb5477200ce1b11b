package absentee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/absentee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type AbsenteeServiceImpl struct {
	user.UserRepository
	attendance.AttendanceRepository
	notifier notification.Notifier
	clock    clock.Clock
}

func NewAbsenteeService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	notifier notification.Notifier,
	clk clock.Clock,
) absentee.AbsenteeService {
	return &AbsenteeServiceImpl{
		UserRepository:       userRepo,
		AttendanceRepository: attendanceRepo,
		notifier:             notifier,
		clock:                clk,
	}
}

// Absentees returns the assigned workers whose id is not in presentIDs, keeping the input order.
func Absentees(assigned []user.User, presentIDs []string) []user.User {
	present := make(map[string]struct{}, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = struct{}{}
	}

	absent := make([]user.User, 0, len(assigned))
	for _, u := range assigned {
		if _, ok := present[u.WorkerID]; !ok {
			absent = append(absent, u)
		}
	}
	return absent
}

// ScanToday implements absentee.AbsenteeService.
func (s *AbsenteeServiceImpl) ScanToday(ctx context.Context, shiftName string) (absentee.ScanResult, error) {
	return s.Scan(ctx, absentee.ScanRequest{ShiftName: shiftName})
}

// Scan implements absentee.AbsenteeService.
func (s *AbsenteeServiceImpl) Scan(ctx context.Context, req absentee.ScanRequest) (absentee.ScanResult, error) {
	if err := req.Validate(); err != nil {
		return absentee.ScanResult{}, err
	}

	workDate := clock.DateOf(s.clock.Now())
	if req.Date != "" {
		parsed, err := clock.ParseDate(req.Date, s.clock.Location())
		if err != nil {
			return absentee.ScanResult{}, fmt.Errorf("failed to parse date: %w", err)
		}
		workDate = parsed
	}
	dateLabel := clock.FormatDate(workDate)

	assigned, err := s.UserRepository.ListWorkersByShiftName(ctx, req.ShiftName)
	if err != nil {
		return absentee.ScanResult{}, fmt.Errorf("failed to list workers for shift: %w", err)
	}
	presentIDs, err := s.AttendanceRepository.ListWorkerIDsByDate(ctx, workDate)
	if err != nil {
		return absentee.ScanResult{}, fmt.Errorf("failed to list checked-in workers: %w", err)
	}

	absent := Absentees(assigned, presentIDs)
	result := absentee.ScanResult{
		ShiftName: req.ShiftName,
		WorkDate:  dateLabel,
		Absent:    make([]absentee.AbsentWorker, 0, len(absent)),
	}

	if len(absent) == 0 {
		slog.Info("All workers checked in", "shift", req.ShiftName, "work_date", dateLabel)
		return result, nil
	}

	for _, w := range absent {
		result.Absent = append(result.Absent, absentee.AbsentWorker{WorkerID: w.WorkerID, Job: w.Job, Email: w.Email})

		if !w.HasEmail() || s.notifier == nil {
			result.NoEmail++
			continue
		}

		err := s.notifier.SendShiftReminder(ctx, notification.ShiftReminder{
			To:        *w.Email,
			WorkerID:  w.WorkerID,
			ShiftName: req.ShiftName,
			WorkDate:  dateLabel,
		})
		if err != nil {
			result.Failed++
			slog.Error("Failed to send shift reminder", "worker_id", w.WorkerID, "shift", req.ShiftName, "error", err)
			continue
		}
		result.Notified++
	}

	slog.Info("Absentee scan finished",
		"shift", req.ShiftName,
		"work_date", dateLabel,
		"absent", len(result.Absent),
		"notified", result.Notified,
		"failed", result.Failed,
	)
	return result, nil
}
