package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
)

type shiftRepository struct {
	*Store
}

func NewShiftRepository(store *Store) shift.ShiftRepository {
	return &shiftRepository{Store: store}
}

// GetByWorkerID implements shift.ShiftRepository.
func (r *shiftRepository) GetByWorkerID(ctx context.Context, workerID string) (shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[workerID]
	if !ok || u.IsDeleted() || u.ShiftID == nil {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	s, ok := r.shifts[*u.ShiftID]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shifts := make([]shift.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		shifts = append(shifts, s)
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].ID < shifts[j].ID })
	return shifts, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.shifts {
		if existing.Name == s.Name {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
	}

	r.nextShiftID++
	s.ID = r.nextShiftID
	r.shifts[s.ID] = s
	return s, nil
}
