package absentee

import "context"

type AbsenteeService interface {
	Scan(ctx context.Context, req ScanRequest) (ScanResult, error)
	// ScanToday runs Scan for the current civil date.
	ScanToday(ctx context.Context, shiftName string) (ScanResult, error)
}
