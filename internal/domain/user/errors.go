package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrWorkerIDExists          = errors.New("worker_id already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
