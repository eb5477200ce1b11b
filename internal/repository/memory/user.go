package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

type userRepository struct {
	*Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepository{Store: store}
}

// GetByWorkerID implements user.UserRepository.
func (r *userRepository) GetByWorkerID(ctx context.Context, workerID string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[workerID]
	if !ok || u.IsDeleted() {
		return user.User{}, user.ErrUserNotFound
	}
	return r.withShiftName(u), nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.users[newUser.WorkerID]; exists && !existing.IsDeleted() {
		return user.ErrWorkerIDExists
	}
	r.users[newUser.WorkerID] = newUser
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, workerID string, deletedAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[workerID]
	if !exists || u.IsDeleted() {
		return 0, nil
	}
	u.DeletedAt = &deletedAt
	r.users[workerID] = u
	return 1, nil
}

// ListWorkers implements user.UserRepository.
func (r *userRepository) ListWorkers(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.workersWhere(func(u user.User) bool { return true }), nil
}

// ListWorkersByShiftName implements user.UserRepository.
func (r *userRepository) ListWorkersByShiftName(ctx context.Context, shiftName string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.workersWhere(func(u user.User) bool {
		if u.ShiftID == nil {
			return false
		}
		s, ok := r.shifts[*u.ShiftID]
		return ok && s.Name == shiftName
	}), nil
}

// CountWorkers implements user.UserRepository.
func (r *userRepository) CountWorkers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.workersWhere(func(u user.User) bool { return true }))), nil
}

// workersWhere must be called with the lock held.
func (r *userRepository) workersWhere(keep func(user.User) bool) []user.User {
	workers := make([]user.User, 0)
	for _, u := range r.users {
		if u.Role == user.RoleWorker && !u.IsDeleted() && keep(u) {
			workers = append(workers, r.withShiftName(u))
		}
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].WorkerID < workers[j].WorkerID })
	return workers
}

func (r *userRepository) withShiftName(u user.User) user.User {
	if u.ShiftID != nil {
		if s, ok := r.shifts[*u.ShiftID]; ok {
			name := s.Name
			u.ShiftName = &name
		}
	}
	return u
}
