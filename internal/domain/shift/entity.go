package shift

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type Shift struct {
	ID        int64
	Name      string
	StartTime clock.TimeOfDay
	EndTime   clock.TimeOfDay
}

// IsOvernight reports whether the shift ends on the next calendar day.
func (s Shift) IsOvernight() bool {
	return s.EndTime.Compare(s.StartTime) <= 0
}

// Window returns the shift start and end for the shift starting on the civil date of day.
func (s Shift) Window(day time.Time) (start, end time.Time) {
	start = s.StartTime.On(day)
	end = s.EndTime.On(day)
	if s.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
