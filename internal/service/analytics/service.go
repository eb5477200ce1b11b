package analytics

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type AnalyticsServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAnalyticsService(attendanceRepo attendance.AttendanceRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		AttendanceRepository: attendanceRepo,
	}
}

// GetAnalytics implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context) (analytics.AnalyticsResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{})
	if err != nil {
		return analytics.AnalyticsResponse{}, fmt.Errorf("failed to load analytics: %w", err)
	}
	return BuildSeries(records), nil
}
