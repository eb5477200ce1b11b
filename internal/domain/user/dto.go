package user

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	WorkerID    string  `json:"worker_id"`
	Role        string  `json:"role"`
	Job         *string `json:"job"`
	Email       *string `json:"email"`
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	WorkerID string  `json:"worker_id" validate:"required,max=50"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=worker admin"`
	Job      *string `json:"job,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty"`
	ShiftID  *int64  `json:"shift_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	errs := validator.Struct(r)

	if !validator.IsEmpty(r.WorkerID) && !validator.IsValidWorkerID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id may only contain letters, digits, '.', '_' and '-'",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	WorkerID string  `json:"worker_id"`
	Job      *string `json:"job"`
}
