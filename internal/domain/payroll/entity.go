package payroll

import "github.com/shopspring/decimal"

// SalaryRates drive the salary summary view: a flat daily wage plus overtime.
type SalaryRates struct {
	DailyWage    decimal.Decimal
	OvertimeRate decimal.Decimal
}

// HourlyRates drive the monthly payroll view: logged hours plus overtime hours.
// They are configured separately from SalaryRates and the two views are not reconciled.
type HourlyRates struct {
	HourlyRate         decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
}

var (
	DefaultSalaryRates = SalaryRates{
		DailyWage:    decimal.NewFromInt(300),
		OvertimeRate: decimal.NewFromInt(10),
	}
	DefaultHourlyRates = HourlyRates{
		HourlyRate:         decimal.NewFromInt(100),
		OvertimeHourlyRate: decimal.NewFromInt(50),
	}
)
