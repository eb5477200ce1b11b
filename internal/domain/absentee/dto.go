package absentee

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ScanRequest struct {
	ShiftName string `json:"shift_name" validate:"required"`
	// Date defaults to today's civil date
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ScanRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsentWorker struct {
	WorkerID string  `json:"worker_id"`
	Job      *string `json:"job"`
	Email    *string `json:"email"`
}

type ScanResult struct {
	ShiftName string         `json:"shift_name"`
	WorkDate  string         `json:"work_date"`
	Absent    []AbsentWorker `json:"absent"`
	Notified  int            `json:"notified"`
	Failed    int            `json:"failed"`
	NoEmail   int            `json:"no_email"`
}
