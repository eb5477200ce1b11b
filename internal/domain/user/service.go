package user

import "context"

type UserService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Create(ctx context.Context, req CreateUserRequest) error
	Delete(ctx context.Context, workerID string) error
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)
}
