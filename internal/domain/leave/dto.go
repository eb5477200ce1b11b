package leave

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Reason   string `json:"reason" validate:"required,max=1000"`
	FromDate string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" validate:"required,datetime=2006-01-02"`
}

func (r *SubmitLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	from, okFrom := validator.IsValidDate(r.FromDate)
	to, okTo := validator.IsValidDate(r.ToDate)
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	if !Status(r.Status).IsDecision() {
		return ErrInvalidLeaveStatus
	}
	return nil
}

type LeaveRequestResponse struct {
	ID        string  `json:"id"`
	WorkerID  string  `json:"worker_id"`
	Reason    string  `json:"reason"`
	FromDate  string  `json:"from_date"`
	ToDate    string  `json:"to_date"`
	Status    Status  `json:"status"`
	CreatedAt string  `json:"created_at"`
	DecidedAt *string `json:"decided_at"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:        l.ID,
		WorkerID:  l.WorkerID,
		Reason:    l.Reason,
		FromDate:  clock.FormatDate(l.FromDate),
		ToDate:    clock.FormatDate(l.ToDate),
		Status:    l.Status,
		CreatedAt: clock.FormatDateTime(l.CreatedAt),
	}
	if l.DecidedAt != nil {
		decided := clock.FormatDateTime(*l.DecidedAt)
		resp.DecidedAt = &decided
	}
	return resp
}
