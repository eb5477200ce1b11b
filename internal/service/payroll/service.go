package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type PayrollServiceImpl struct {
	attendance.AttendanceRepository
	salaryRates payroll.SalaryRates
	hourlyRates payroll.HourlyRates
	clock       clock.Clock
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	salaryRates payroll.SalaryRates,
	hourlyRates payroll.HourlyRates,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		AttendanceRepository: attendanceRepo,
		salaryRates:          salaryRates,
		hourlyRates:          hourlyRates,
		clock:                clk,
	}
}

// monthRange returns the first and last civil day of a month.
func monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// SalarySummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) SalarySummary(ctx context.Context, req payroll.SalarySummaryRequest) ([]payroll.SalarySummaryRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := attendance.AttendanceFilter{}
	if req.WorkerID != "" {
		filter.WorkerID = &req.WorkerID
	}

	var monthPtr, yearPtr *int
	if month, year, ok := req.Period(); ok {
		from, to := monthRange(year, time.Month(month), s.clock.Location())
		filter.FromDate = &from
		filter.ToDate = &to
		monthPtr, yearPtr = &month, &year
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for salary summary: %w", err)
	}

	return SummarizeSalary(records, s.salaryRates, monthPtr, yearPtr), nil
}

// Payroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payroll(ctx context.Context, workerID string) (payroll.PayrollResponse, error) {
	now := s.clock.Now()
	from, to := monthRange(now.Year(), now.Month(), s.clock.Location())

	filter := attendance.AttendanceFilter{FromDate: &from, ToDate: &to}
	if workerID != "" {
		filter.WorkerID = &workerID
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list attendance for payroll: %w", err)
	}

	resp := payroll.PayrollResponse{
		Month: int(now.Month()),
		Year:  now.Year(),
		Data:  SummarizePayroll(records, s.hourlyRates),
	}
	if len(resp.Data) == 0 {
		resp.Message = "No data found for this month"
	}
	return resp, nil
}
