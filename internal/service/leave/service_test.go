package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notices chan notification.LeaveRequestNotice
	err     error
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{notices: make(chan notification.LeaveRequestNotice, 4), err: err}
}

func (n *recordingNotifier) SendShiftReminder(ctx context.Context, reminder notification.ShiftReminder) error {
	return nil
}

func (n *recordingNotifier) SendLeaveRequestNotice(ctx context.Context, notice notification.LeaveRequestNotice) error {
	n.notices <- notice
	return n.err
}

func setupLeaveService(t *testing.T, notifier notification.Notifier) (leave.LeaveService, *clock.FixedClock) {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	require.NoError(t, userRepo.Create(context.Background(), user.User{WorkerID: "W001", Role: user.RoleWorker}))

	clk := clock.NewFixedClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	svc := NewLeaveService(memory.NewLeaveRequestRepository(store), userRepo, notifier, "admin@example.com", clk)
	return svc, clk
}

func validSubmit() leave.SubmitLeaveRequest {
	return leave.SubmitLeaveRequest{
		WorkerID: "W001",
		Reason:   "Family function",
		FromDate: "2025-03-20",
		ToDate:   "2025-03-21",
	}
}

func TestLeaveService_Submit(t *testing.T) {
	notifier := newRecordingNotifier(nil)
	svc, _ := setupLeaveService(t, notifier)

	// Act
	resp, err := svc.Submit(context.Background(), validSubmit())

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, "2025-03-20", resp.FromDate)
	assert.Nil(t, resp.DecidedAt)

	select {
	case notice := <-notifier.notices:
		assert.Equal(t, "admin@example.com", notice.To)
		assert.Equal(t, "W001", notice.WorkerID)
		assert.Equal(t, "Family function", notice.Reason)
		assert.Equal(t, "2025-03-21", notice.ToDate)
	case <-time.After(2 * time.Second):
		t.Fatal("leave notice was not sent")
	}
}

func TestLeaveService_Submit_NotifierFailureDoesNotFailRequest(t *testing.T) {
	notifier := newRecordingNotifier(errors.New("smtp down"))
	svc, _ := setupLeaveService(t, notifier)

	_, err := svc.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	select {
	case <-notifier.notices:
	case <-time.After(2 * time.Second):
		t.Fatal("leave notice was not attempted")
	}

	requests, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestLeaveService_Submit_Invalid(t *testing.T) {
	svc, _ := setupLeaveService(t, newRecordingNotifier(nil))

	req := validSubmit()
	req.ToDate = "2025-03-19"
	_, err := svc.Submit(context.Background(), req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "to_date")

	req = validSubmit()
	req.WorkerID = "ghost"
	_, err = svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	svc, clk := setupLeaveService(t, newRecordingNotifier(nil))

	submitted, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	clk.Advance(time.Hour)
	decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{ID: submitted.ID, Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)
	assert.Equal(t, "2025-03-14 11:00:00", *decided.DecidedAt)

	// Second decision is rejected
	_, err = svc.Decide(ctx, leave.DecideLeaveRequest{ID: submitted.ID, Status: "Rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	requests, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, leave.StatusApproved, requests[0].Status)
}

func TestLeaveService_Decide_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupLeaveService(t, newRecordingNotifier(nil))

	submitted, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	for _, status := range []string{"Pending", "approved", ""} {
		_, err = svc.Decide(ctx, leave.DecideLeaveRequest{ID: submitted.ID, Status: status})
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveStatus, "status %q", status)
	}

	_, err = svc.Decide(ctx, leave.DecideLeaveRequest{ID: "missing", Status: "Rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, clk := setupLeaveService(t, newRecordingNotifier(nil))

	first, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	clk.Advance(time.Minute)
	second, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	requests, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
}
