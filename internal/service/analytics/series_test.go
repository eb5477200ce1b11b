package analytics

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func hours(h float64) *float64 { return &h }

func TestBuildSeries(t *testing.T) {
	// List returns newest first, the series must come out ascending
	records := []attendance.Attendance{
		{WorkerID: "W002", WorkDate: day(5), Status: attendance.StatusOnTime},
		{WorkerID: "W001", WorkDate: day(5), Status: attendance.StatusLate, HoursWorked: hours(7.5)},
		{WorkerID: "W002", WorkDate: day(4), Status: attendance.StatusLate, HoursWorked: hours(8.1)},
		{WorkerID: "W001", WorkDate: day(4), Status: attendance.StatusLeftEarly, HoursWorked: hours(4.2)},
	}

	got := BuildSeries(records)

	assert.Equal(t, 19.8, got.TotalHours)
	assert.Equal(t, 2, got.TotalLate)
	assert.Equal(t, 4, got.TotalCheckins)
	assert.Equal(t, []string{"2025-03-04", "2025-03-05"}, got.Labels)
	assert.Equal(t, []float64{12.3, 7.5}, got.HoursPerDay)
	assert.Equal(t, []int{1, 1}, got.LatePerDay)
	assert.Equal(t, []int{2, 2}, got.CheckinsPerDay)
}

func TestBuildSeries_Empty(t *testing.T) {
	got := BuildSeries(nil)

	assert.Zero(t, got.TotalCheckins)
	assert.Empty(t, got.Labels)
	assert.NotNil(t, got.HoursPerDay)
}
