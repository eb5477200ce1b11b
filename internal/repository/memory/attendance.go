package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	*Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{Store: store}
}

// FindOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindOpenSession(ctx context.Context, workerID string) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *attendance.Attendance
	for _, a := range r.attendances {
		if a.WorkerID != workerID || !a.IsOpen() {
			continue
		}
		if latest == nil || a.CheckinTime.After(latest.CheckinTime) {
			found := a
			latest = &found
		}
	}
	return latest, nil
}

// FindByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindByWorkerAndDate(ctx context.Context, workerID string, workDate time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.attendances {
		if a.WorkerID == workerID && sameDate(a.WorkDate, workDate) {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Insert(ctx context.Context, att attendance.Attendance) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.attendances {
		if a.WorkerID != att.WorkerID {
			continue
		}
		if sameDate(a.WorkDate, att.WorkDate) || a.IsOpen() {
			return 0, attendance.ErrAlreadyCheckedIn
		}
	}

	r.nextAttendanceID++
	att.ID = r.nextAttendanceID
	r.attendances[att.ID] = att
	return att.ID, nil
}

// UpdateCheckout implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateCheckout(ctx context.Context, id int64, update attendance.CheckoutUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.attendances[id]
	if !ok || !a.IsOpen() {
		return 0, nil
	}

	checkout := update.CheckoutTime
	hours := update.HoursWorked
	overtime := update.OvertimeHours
	a.CheckoutTime = &checkout
	a.HoursWorked = &hours
	a.OvertimeHours = &overtime
	a.Status = update.Status
	r.attendances[id] = a
	return 1, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, a := range r.attendances {
		if filter.WorkerID != nil && a.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.FromDate != nil && a.WorkDate.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && a.WorkDate.After(*filter.ToDate) {
			continue
		}

		if u, ok := r.users[a.WorkerID]; ok {
			role := string(u.Role)
			a.Job = u.Job
			a.Role = &role
		}
		if s, ok := r.shifts[a.ShiftID]; ok {
			name := s.Name
			a.ShiftName = &name
		}
		records = append(records, a)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].WorkDate.Equal(records[j].WorkDate) {
			return records[i].WorkDate.After(records[j].WorkDate)
		}
		if !records[i].CheckinTime.Equal(records[j].CheckinTime) {
			return records[i].CheckinTime.Before(records[j].CheckinTime)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// ListWorkerIDsByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListWorkerIDsByDate(ctx context.Context, workDate time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, a := range r.attendances {
		if !sameDate(a.WorkDate, workDate) {
			continue
		}
		if _, dup := seen[a.WorkerID]; dup {
			continue
		}
		seen[a.WorkerID] = struct{}{}
		ids = append(ids, a.WorkerID)
	}
	sort.Strings(ids)
	return ids, nil
}

// CountOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountOpenSessions(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, a := range r.attendances {
		if a.IsOpen() {
			n++
		}
	}
	return n, nil
}

// CountByWorkDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByWorkDate(ctx context.Context, workDate time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, a := range r.attendances {
		if sameDate(a.WorkDate, workDate) {
			n++
		}
	}
	return n, nil
}
