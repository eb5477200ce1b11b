package payroll

import (
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type workerTotals struct {
	workerID       string
	job            *string
	presentDays    int
	workedDays     int
	lateDays       int
	earlyLeaveDays int
	workDates      map[string]struct{}
	hours          decimal.Decimal
	overtime       decimal.Decimal
}

func decimalOrZero(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

// groupByWorker folds records into per-worker totals ordered by worker id.
func groupByWorker(records []attendance.Attendance) []*workerTotals {
	byWorker := make(map[string]*workerTotals)
	for _, r := range records {
		t, ok := byWorker[r.WorkerID]
		if !ok {
			t = &workerTotals{
				workerID:  r.WorkerID,
				job:       r.Job,
				workDates: make(map[string]struct{}),
			}
			byWorker[r.WorkerID] = t
		}

		t.presentDays++
		if r.CountsAsWorked() {
			t.workedDays++
		}
		switch r.Status {
		case attendance.StatusLate:
			t.lateDays++
		case attendance.StatusLeftEarly:
			t.earlyLeaveDays++
		}
		t.workDates[r.WorkDate.Format("2006-01-02")] = struct{}{}
		t.hours = t.hours.Add(decimalOrZero(r.HoursWorked))
		t.overtime = t.overtime.Add(decimalOrZero(r.OvertimeHours))
	}

	totals := make([]*workerTotals, 0, len(byWorker))
	for _, t := range byWorker {
		totals = append(totals, t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].workerID < totals[j].workerID })
	return totals
}

// SummarizeSalary builds the daily-wage view. Worked days pay the daily wage,
// overtime hours pay the overtime rate. month and year are echoed on every row.
func SummarizeSalary(records []attendance.Attendance, rates payroll.SalaryRates, month, year *int) []payroll.SalarySummaryRow {
	totals := groupByWorker(records)

	rows := make([]payroll.SalarySummaryRow, 0, len(totals))
	for _, t := range totals {
		baseSalary := decimal.NewFromInt(int64(t.workedDays)).Mul(rates.DailyWage)
		overtimeAmount := t.overtime.Mul(rates.OvertimeRate)

		rows = append(rows, payroll.SalarySummaryRow{
			WorkerID:       t.workerID,
			Job:            t.job,
			PresentDays:    t.presentDays,
			WorkedDays:     t.workedDays,
			LateDays:       t.lateDays,
			EarlyLeaveDays: t.earlyLeaveDays,
			TotalHours:     t.hours.StringFixed(2),
			TotalOvertime:  t.overtime.StringFixed(2),
			BaseSalary:     baseSalary.StringFixed(2),
			OvertimeAmount: overtimeAmount.StringFixed(2),
			TotalSalary:    baseSalary.Add(overtimeAmount).StringFixed(2),
			Month:          month,
			Year:           year,
		})
	}
	return rows
}

// SummarizePayroll builds the hourly view. Worked days are distinct work dates;
// totals are rounded before the salary is computed.
func SummarizePayroll(records []attendance.Attendance, rates payroll.HourlyRates) []payroll.PayrollRow {
	totals := groupByWorker(records)

	rows := make([]payroll.PayrollRow, 0, len(totals))
	for _, t := range totals {
		hours := t.hours.Round(2)
		overtime := t.overtime.Round(2)
		salary := hours.Mul(rates.HourlyRate).Add(overtime.Mul(rates.OvertimeHourlyRate)).Round(2)

		rows = append(rows, payroll.PayrollRow{
			WorkerID:      t.workerID,
			Job:           t.job,
			WorkedDays:    len(t.workDates),
			TotalHours:    hours.InexactFloat64(),
			TotalOvertime: overtime.InexactFloat64(),
			Salary:        salary.InexactFloat64(),
		})
	}
	return rows
}
