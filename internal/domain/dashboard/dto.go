package dashboard

type DashboardResponse struct {
	Date                 string `json:"date"`
	Workers              int64  `json:"workers"`
	CheckedInToday       int64  `json:"checked_in_today"`
	OpenSessions         int64  `json:"open_sessions"`
	PendingLeaveRequests int64  `json:"pending_leave_requests"`
}
