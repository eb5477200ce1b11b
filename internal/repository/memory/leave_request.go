package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	*Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{Store: store}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveRequests[req.ID] = req
	return nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]leave.LeaveRequest, 0, len(r.leaveRequests))
	for _, req := range r.leaveRequests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})
	return requests, nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Decide(ctx context.Context, id string, status leave.Status, decidedAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.leaveRequests[id]
	if !ok || !req.IsPending() {
		return 0, nil
	}
	req.Status = status
	req.DecidedAt = &decidedAt
	r.leaveRequests[id] = req
	return 1, nil
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, req := range r.leaveRequests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}
