package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Role     string `json:"role"`
}

func (r *CheckInRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	Message     string `json:"message"`
	ShiftName   string `json:"shift_name"`
	Status      Status `json:"status"`
	CheckinTime string `json:"checkin_time"`
	WorkDate    string `json:"work_date"`
}

type CheckOutRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Role     string `json:"role"`
}

func (r *CheckOutRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutResponse struct {
	Message       string  `json:"message"`
	CheckinTime   string  `json:"checkin_time"`
	CheckoutTime  string  `json:"checkout_time"`
	HoursWorked   float64 `json:"hours_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        Status  `json:"status"`
}

// ReportRequest selects the records for the attendance report.
// Workers only see their own records, everyone else sees all of them.
type ReportRequest struct {
	WorkerID string
	Role     string
}

type AttendanceResponse struct {
	ID            int64    `json:"id"`
	WorkerID      string   `json:"worker_id"`
	WorkDate      string   `json:"work_date"`
	CheckinTime   string   `json:"checkin_time"`
	CheckoutTime  *string  `json:"checkout_time"`
	ShiftID       int64    `json:"shift_id"`
	ShiftName     *string  `json:"shift_name,omitempty"`
	Status        Status   `json:"status"`
	HoursWorked   *float64 `json:"hours_worked"`
	OvertimeHours *float64 `json:"overtime_hours"`
	Job           *string  `json:"job"`
	Role          *string  `json:"role"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		WorkerID:      a.WorkerID,
		WorkDate:      clock.FormatDate(a.WorkDate),
		CheckinTime:   clock.FormatDateTime(a.CheckinTime),
		ShiftID:       a.ShiftID,
		ShiftName:     a.ShiftName,
		Status:        a.Status,
		HoursWorked:   a.HoursWorked,
		OvertimeHours: a.OvertimeHours,
		Job:           a.Job,
		Role:          a.Role,
	}
	if a.CheckoutTime != nil {
		out := clock.FormatDateTime(*a.CheckoutTime)
		resp.CheckoutTime = &out
	}
	return resp
}
