package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found for this worker")
	ErrShiftNameExists  = errors.New("shift name already exists")
	ErrInvalidShiftTime = errors.New("invalid shift time")
)
