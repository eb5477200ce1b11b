package analytics

type AnalyticsResponse struct {
	TotalHours     float64   `json:"totalHours"`
	TotalLate      int       `json:"totalLate"`
	TotalCheckins  int       `json:"totalCheckins"`
	Labels         []string  `json:"labels"`
	HoursPerDay    []float64 `json:"hoursPerDay"`
	LatePerDay     []int     `json:"latePerDay"`
	CheckinsPerDay []int     `json:"checkinsPerDay"`
}
