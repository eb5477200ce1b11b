package user

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) (user.UserService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	svc := NewUserService(
		memory.NewUserRepository(store),
		memory.NewShiftRepository(store),
		memory.NewTransactor(),
		jwt.NewJWTService("test-secret", "1h"),
		clk,
	)
	return svc, store
}

func strPtr(s string) *string { return &s }

// Test Login with valid credentials
func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupUserService(t)

	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{
		WorkerID: "W001",
		Password: "password123",
		Role:     "worker",
		Job:      strPtr("Packer"),
		Email:    strPtr("w001@example.com"),
	}))

	// Act
	resp, err := svc.Login(ctx, user.LoginRequest{WorkerID: "W001", Password: "password123"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "W001", resp.WorkerID)
	assert.Equal(t, "worker", resp.Role)
	require.NotNil(t, resp.Job)
	assert.Equal(t, "Packer", *resp.Job)
	assert.NotEmpty(t, resp.AccessToken)
}

// Test Login with wrong password and unknown worker
func TestUserService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupUserService(t)
	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{WorkerID: "W001", Password: "password123", Role: "worker"}))

	_, err := svc.Login(ctx, user.LoginRequest{WorkerID: "W001", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(ctx, user.LoginRequest{WorkerID: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_MissingFields(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{WorkerID: "W001"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "password")
}

func TestUserService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupUserService(t)
	req := user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "worker"}

	require.NoError(t, svc.Create(ctx, req))
	assert.ErrorIs(t, svc.Create(ctx, req), user.ErrWorkerIDExists)
}

func TestUserService_Create_InvalidRoleAndShift(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupUserService(t)

	err := svc.Create(ctx, user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "manager"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "role must be one of: worker, admin", validationErrs.ToMap()["role"])

	missingShift := int64(42)
	err = svc.Create(ctx, user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "worker", ShiftID: &missingShift})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestUserService_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	svc, store := setupUserService(t)

	created, err := memory.NewShiftRepository(store).Create(ctx, shift.Shift{
		Name:      "Shift 1",
		StartTime: clock.MustParseTimeOfDay("09:30"),
		EndTime:   clock.MustParseTimeOfDay("17:30"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{WorkerID: "W002", Password: "secret", Role: "worker", ShiftID: &created.ID}))
	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "worker", Job: strPtr("Picker")}))
	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{WorkerID: "A001", Password: "secret", Role: "admin"}))

	workers, err := svc.ListWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "W001", workers[0].WorkerID)
	assert.Equal(t, "W002", workers[1].WorkerID)

	require.NoError(t, svc.Delete(ctx, "W001"))
	assert.ErrorIs(t, svc.Delete(ctx, "W001"), user.ErrUserNotFound)

	workers, err = svc.ListWorkers(ctx)
	require.NoError(t, err)
	assert.Len(t, workers, 1)
}

type countingTransactor struct {
	calls int
}

func (c *countingTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	c.calls++
	return fn(ctx)
}

func TestUserService_Create_RunsInTransaction(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tx := &countingTransactor{}
	svc := NewUserService(
		memory.NewUserRepository(store),
		memory.NewShiftRepository(store),
		tx,
		jwt.NewJWTService("test-secret", "1h"),
		clock.NewFixedClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)),
	)

	require.NoError(t, svc.Create(ctx, user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "worker"}))
	assert.Equal(t, 1, tx.calls)

	missingShift := int64(7)
	err := svc.Create(ctx, user.CreateUserRequest{WorkerID: "W002", Password: "secret", Role: "worker", ShiftID: &missingShift})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.Equal(t, 2, tx.calls)
}

func TestUserService_Create_AfterDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupUserService(t)
	req := user.CreateUserRequest{WorkerID: "W001", Password: "secret", Role: "worker"}

	require.NoError(t, svc.Create(ctx, req))
	require.NoError(t, svc.Delete(ctx, "W001"))

	_, err := svc.Login(ctx, user.LoginRequest{WorkerID: "W001", Password: "secret"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	require.NoError(t, svc.Create(ctx, req))
	workers, err := svc.ListWorkers(ctx)
	require.NoError(t, err)
	assert.Len(t, workers, 1)
}
