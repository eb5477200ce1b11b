package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	shift.ShiftRepository
	jwt.Service
	transactor database.Transactor
	clock      clock.Clock
}

func NewUserService(
	userRepo user.UserRepository,
	shiftRepo shift.ShiftRepository,
	transactor database.Transactor,
	jwtService jwt.Service,
	clk clock.Clock,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:  userRepo,
		ShiftRepository: shiftRepo,
		Service:         jwtService,
		transactor:      transactor,
		clock:           clk,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements user.UserService.
func (s *UserServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	userData, err := s.UserRepository.GetByWorkerID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, fmt.Errorf("failed to get user by worker_id: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	token, expiresAt, err := s.Service.GenerateAccessToken(userData.WorkerID, userData.Role)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return user.LoginResponse{
		WorkerID:    userData.WorkerID,
		Role:        string(userData.Role),
		Job:         userData.Job,
		Email:       userData.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		WorkerID:     req.WorkerID,
		PasswordHash: hashed,
		Role:         user.Role(req.Role),
		Job:          req.Job,
		Email:        req.Email,
		ShiftID:      req.ShiftID,
		CreatedAt:    s.clock.Now(),
	}
	// Shift lookup and insert share one transaction
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if newUser.ShiftID != nil {
			if _, err := s.ShiftRepository.GetByID(txCtx, *newUser.ShiftID); err != nil {
				if errors.Is(err, shift.ErrShiftNotFound) {
					return shift.ErrShiftNotFound
				}
				return fmt.Errorf("failed to get shift: %w", err)
			}
		}

		if err := s.UserRepository.Create(txCtx, newUser); err != nil {
			if errors.Is(err, user.ErrWorkerIDExists) {
				return user.ErrWorkerIDExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("User created", "worker_id", newUser.WorkerID, "role", newUser.Role)
	return nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, workerID string) error {
	affected, err := s.UserRepository.Delete(ctx, workerID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}

	slog.Info("User deleted", "worker_id", workerID)
	return nil
}

// ListWorkers implements user.UserService.
func (s *UserServiceImpl) ListWorkers(ctx context.Context) ([]user.WorkerResponse, error) {
	workers, err := s.UserRepository.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]user.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, user.WorkerResponse{WorkerID: w.WorkerID, Job: w.Job})
	}
	return responses, nil
}
