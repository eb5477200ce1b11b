package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	user.UserRepository
	notifier    notification.Notifier
	notifyEmail string
	clock       clock.Clock
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	notifier notification.Notifier,
	notifyEmail string,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		UserRepository:         userRepo,
		notifier:               notifier,
		notifyEmail:            notifyEmail,
		clock:                  clk,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.UserRepository.GetByWorkerID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return leave.LeaveRequestResponse{}, user.ErrUserNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	loc := s.clock.Location()
	fromDate, err := clock.ParseDate(req.FromDate, loc)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse from_date: %w", err)
	}
	toDate, err := clock.ParseDate(req.ToDate, loc)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse to_date: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	newRequest := leave.LeaveRequest{
		ID:        id.String(),
		WorkerID:  req.WorkerID,
		Reason:    req.Reason,
		FromDate:  fromDate,
		ToDate:    toDate,
		Status:    leave.StatusPending,
		CreatedAt: s.clock.Now(),
	}
	if err := s.LeaveRequestRepository.Create(ctx, newRequest); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "leave_request_id", newRequest.ID, "worker_id", newRequest.WorkerID)

	s.notifyAdmin(ctx, newRequest)

	return leave.NewLeaveRequestResponse(newRequest), nil
}

// notifyAdmin sends the notice in the background; the request does not wait for the mail server.
func (s *LeaveServiceImpl) notifyAdmin(ctx context.Context, req leave.LeaveRequest) {
	if s.notifier == nil || s.notifyEmail == "" {
		slog.Warn("Leave notification skipped, no admin mailbox configured", "leave_request_id", req.ID)
		return
	}

	notice := notification.LeaveRequestNotice{
		To:       s.notifyEmail,
		WorkerID: req.WorkerID,
		Reason:   req.Reason,
		FromDate: clock.FormatDate(req.FromDate),
		ToDate:   clock.FormatDate(req.ToDate),
	}
	bgCtx := context.WithoutCancel(ctx)

	go func() {
		if err := s.notifier.SendLeaveRequestNotice(bgCtx, notice); err != nil {
			slog.Error("Failed to send leave request notice", "leave_request_id", req.ID, "error", err)
		}
	}()
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// Decide implements leave.LeaveService. Only Pending requests can be decided.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if !request.IsPending() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := s.clock.Now()
	status := leave.Status(req.Status)

	affected, err := s.LeaveRequestRepository.Decide(ctx, request.ID, status, decidedAt)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if affected == 0 {
		// Decided by another admin in the meantime
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	request.Status = status
	request.DecidedAt = &decidedAt

	slog.Info("Leave request decided", "leave_request_id", request.ID, "status", status)
	return leave.NewLeaveRequestResponse(request), nil
}
