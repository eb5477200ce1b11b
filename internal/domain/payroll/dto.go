package payroll

import (
	"strconv"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type SalarySummaryRequest struct {
	WorkerID string
	Month    string
	Year     string
}

// Validate checks the optional period. The month filter only applies when both month and year are given.
func (r *SalarySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if m, _ := strconv.Atoi(r.Month); !validator.IsNumeric(r.Month) || m < 1 || m > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	}

	if r.Year != "" {
		if y, _ := strconv.Atoi(r.Year); !validator.IsNumeric(r.Year) || y < 1970 || y > 9999 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be a four digit year",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the requested month and year, ok is false when no full period was given.
func (r *SalarySummaryRequest) Period() (month, year int, ok bool) {
	if r.Month == "" || r.Year == "" {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(r.Month)
	year, _ = strconv.Atoi(r.Year)
	return month, year, true
}

type SalarySummaryRow struct {
	WorkerID       string  `json:"workerId"`
	Job            *string `json:"job"`
	PresentDays    int     `json:"presentDays"`
	WorkedDays     int     `json:"workedDays"`
	LateDays       int     `json:"lateDays"`
	EarlyLeaveDays int     `json:"earlyLeaveDays"`
	TotalHours     string  `json:"totalHours"`
	TotalOvertime  string  `json:"totalOvertime"`
	BaseSalary     string  `json:"baseSalary"`
	OvertimeAmount string  `json:"overtimeAmount"`
	TotalSalary    string  `json:"totalSalary"`
	Month          *int    `json:"month"`
	Year           *int    `json:"year"`
}

type PayrollRow struct {
	WorkerID      string  `json:"worker_id"`
	Job           *string `json:"job"`
	WorkedDays    int     `json:"workedDays"`
	TotalHours    float64 `json:"totalHours"`
	TotalOvertime float64 `json:"totalOvertime"`
	Salary        float64 `json:"salary"`
}

type PayrollResponse struct {
	Month   int          `json:"month"`
	Year    int          `json:"year"`
	Message string       `json:"message,omitempty"`
	Data    []PayrollRow `json:"data"`
}
