package analytics

import "context"

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (AnalyticsResponse, error)
}
