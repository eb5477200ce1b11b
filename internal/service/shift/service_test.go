package shift

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(memory.NewShiftRepository(memory.NewStore()))

	// Act
	created, err := svc.Create(ctx, shift.CreateShiftRequest{Name: "Shift 2", StartTime: "22:00", EndTime: "06:00"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Shift 2", created.Name)
	assert.Equal(t, "22:00:00", created.StartTime)
	assert.Equal(t, "06:00:00", created.EndTime)
	assert.True(t, created.Overnight)

	shifts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, created.ID, shifts[0].ID)
}

func TestShiftService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(memory.NewShiftRepository(memory.NewStore()))

	_, err := svc.Create(ctx, shift.CreateShiftRequest{Name: "Shift 1", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, shift.CreateShiftRequest{Name: "Shift 1", StartTime: "10:00", EndTime: "18:00"})
	assert.ErrorIs(t, err, shift.ErrShiftNameExists)
}

func TestShiftService_Create_InvalidTimes(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(memory.NewShiftRepository(memory.NewStore()))

	_, err := svc.Create(ctx, shift.CreateShiftRequest{Name: "Broken", StartTime: "25:00", EndTime: "06:00"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "start_time")

	_, err = svc.Create(ctx, shift.CreateShiftRequest{Name: "Zero", StartTime: "08:00", EndTime: "08:00:00"})
	assert.ErrorIs(t, err, shift.ErrInvalidShiftTime)
}
