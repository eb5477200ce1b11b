package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetAnalytics(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetAnalytics handles GET /analytics
func (h *analyticsHandlerImpl) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
