package payroll

import "context"

type PayrollService interface {
	// SalarySummary is the daily-wage view, optionally filtered by worker and month.
	SalarySummary(ctx context.Context, req SalarySummaryRequest) ([]SalarySummaryRow, error)
	// Payroll is the hourly view over the current civil month.
	Payroll(ctx context.Context, workerID string) (PayrollResponse, error)
}
