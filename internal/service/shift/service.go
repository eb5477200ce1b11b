package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
	}
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses, nil
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, err := clock.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("%w: %v", shift.ErrInvalidShiftTime, err)
	}
	end, err := clock.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("%w: %v", shift.ErrInvalidShiftTime, err)
	}
	if start == end {
		return shift.ShiftResponse{}, fmt.Errorf("%w: start and end must differ", shift.ErrInvalidShiftTime)
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		if errors.Is(err, shift.ErrShiftNameExists) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	slog.Info("Shift created", "shift_id", created.ID, "name", created.Name, "overnight", created.IsOvernight())
	return shift.NewShiftResponse(created), nil
}
