package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)
	GetHistory(ctx context.Context, workerID string) ([]AttendanceResponse, error)
	GetReport(ctx context.Context, req ReportRequest) ([]AttendanceResponse, error)
}
