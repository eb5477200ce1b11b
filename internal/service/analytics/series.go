package analytics

import (
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// BuildSeries computes totals and per-day series over records, days ascending.
// Open sessions count as check-ins with zero hours.
func BuildSeries(records []attendance.Attendance) analytics.AnalyticsResponse {
	sorted := make([]attendance.Attendance, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].WorkDate.Before(sorted[j].WorkDate) })

	resp := analytics.AnalyticsResponse{
		Labels:         []string{},
		HoursPerDay:    []float64{},
		LatePerDay:     []int{},
		CheckinsPerDay: []int{},
	}

	var (
		total   decimal.Decimal
		perDay  []decimal.Decimal
		indexOf = make(map[string]int)
	)

	for _, r := range sorted {
		hours := decimal.Zero
		if r.HoursWorked != nil {
			hours = decimal.NewFromFloat(*r.HoursWorked)
		}
		total = total.Add(hours)
		resp.TotalCheckins++

		label := clock.FormatDate(r.WorkDate)
		idx, ok := indexOf[label]
		if !ok {
			idx = len(resp.Labels)
			indexOf[label] = idx
			resp.Labels = append(resp.Labels, label)
			perDay = append(perDay, decimal.Zero)
			resp.LatePerDay = append(resp.LatePerDay, 0)
			resp.CheckinsPerDay = append(resp.CheckinsPerDay, 0)
		}

		perDay[idx] = perDay[idx].Add(hours)
		resp.CheckinsPerDay[idx]++
		if r.Status == attendance.StatusLate {
			resp.TotalLate++
			resp.LatePerDay[idx]++
		}
	}

	resp.TotalHours = total.Round(2).InexactFloat64()
	for _, h := range perDay {
		resp.HoursPerDay = append(resp.HoursPerDay, h.Round(2).InexactFloat64())
	}
	return resp
}
