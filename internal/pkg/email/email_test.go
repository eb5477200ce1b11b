package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureTransport struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

func (c *captureTransport) Send(ctx context.Context, msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return c.err
}

func TestNotifier_SendShiftReminder(t *testing.T) {
	transport := &captureTransport{}
	notifier, err := NewNotifier(transport)
	require.NoError(t, err)

	err = notifier.SendShiftReminder(context.Background(), notification.ShiftReminder{
		To:        "w001@example.com",
		WorkerID:  "W001",
		ShiftName: "Shift 1",
		WorkDate:  "2025-03-14",
	})

	require.NoError(t, err)
	require.Len(t, transport.messages, 1)
	msg := transport.messages[0]
	assert.Equal(t, "w001@example.com", msg.To)
	assert.Equal(t, "Reminder: Please Check-In (Shift 1)", msg.Subject)
	assert.Equal(t, "Hello W001, you haven't checked in yet for Shift 1 today (2025-03-14). Please check in.", msg.Text)
	assert.Contains(t, msg.HTML, "<strong>Shift 1</strong>")
}

func TestNotifier_SendLeaveRequestNotice(t *testing.T) {
	transport := &captureTransport{}
	notifier, err := NewNotifier(transport)
	require.NoError(t, err)

	err = notifier.SendLeaveRequestNotice(context.Background(), notification.LeaveRequestNotice{
		To:       "admin@example.com",
		WorkerID: "W001",
		Reason:   "<script>alert(1)</script>",
		FromDate: "2025-03-20",
		ToDate:   "2025-03-21",
	})

	require.NoError(t, err)
	msg := transport.messages[0]
	assert.Equal(t, "Leave Request from W001", msg.Subject)
	assert.Equal(t, "Worker W001 requested leave from 2025-03-20 to 2025-03-21.\nReason: <script>alert(1)</script>", msg.Text)
	assert.NotContains(t, msg.HTML, "<script>")
}

func TestSMTPTransport_SkipsWhenNotConfigured(t *testing.T) {
	transport := NewSMTPTransport(config.SMTPConfig{})

	err := transport.Send(context.Background(), Message{To: "a@example.com", Subject: "s"})
	assert.NoError(t, err)
}

func TestSMTPTransport_Retries(t *testing.T) {
	calls := 0
	transport := &smtpTransport{
		cfg: config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com", FromName: "Attendance"},
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			calls++
			assert.Equal(t, "smtp.example.com:587", addr)
			assert.True(t, strings.HasPrefix(string(msg), "From: Attendance <noreply@example.com>\r\n"))
			if calls < 3 {
				return errors.New("421 try again later")
			}
			return nil
		},
		backoff: func(int) time.Duration { return time.Millisecond },
	}

	err := transport.Send(context.Background(), Message{To: "a@example.com", Subject: "s", HTML: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = -10
	err = transport.Send(context.Background(), Message{To: "a@example.com", Subject: "s"})
	assert.ErrorContains(t, err, "after 3 attempts")
}

type fakeSESClient struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSESClient) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	return &ses.SendEmailOutput{MessageId: aws.String("id-1")}, f.err
}

func TestSESTransport_Send(t *testing.T) {
	client := &fakeSESClient{}
	transport := NewSESTransport(client, "noreply@example.com")

	err := transport.Send(context.Background(), Message{To: "a@example.com", Subject: "Hi", Text: "plain", HTML: "<p>rich</p>"})

	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "noreply@example.com", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"a@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "plain", aws.ToString(client.input.Message.Body.Text.Data))
	assert.Equal(t, "<p>rich</p>", aws.ToString(client.input.Message.Body.Html.Data))
}

func TestBreakerTransport_OpensAfterFailures(t *testing.T) {
	failing := &captureTransport{err: errors.New("connection refused")}
	transport := NewBreakerTransport("test-email", failing)

	for i := 0; i < 10; i++ {
		assert.Error(t, transport.Send(context.Background(), Message{To: "a@example.com"}))
	}

	err := transport.Send(context.Background(), Message{To: "a@example.com"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Len(t, failing.messages, 10)
}
