package shift

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func (r *CreateShiftRequest) Validate() error {
	errs := validator.Struct(r)

	if !validator.IsEmpty(r.StartTime) {
		if _, err := clock.ParseTimeOfDay(r.StartTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM or HH:MM:SS"})
		}
	}
	if !validator.IsEmpty(r.EndTime) {
		if _, err := clock.ParseTimeOfDay(r.EndTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM or HH:MM:SS"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overnight bool   `json:"overnight"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Overnight: s.IsOvernight(),
	}
}
