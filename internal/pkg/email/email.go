package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/notification"
)

//go:embed templates/*.html
var templateFS embed.FS

// Message is a rendered email ready for a Transport.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport delivers one message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier renders notification emails and hands them to a Transport.
type Notifier struct {
	transport Transport
	templates *template.Template
}

var _ notification.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier that sends through transport
func NewNotifier(transport Transport) (*Notifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &Notifier{
		transport: transport,
		templates: tmpl,
	}, nil
}

// SendShiftReminder sends a check-in reminder to a worker
func (n *Notifier) SendShiftReminder(ctx context.Context, reminder notification.ShiftReminder) error {
	html, err := n.render("shift_reminder.html", reminder)
	if err != nil {
		return err
	}

	return n.transport.Send(ctx, Message{
		To:      reminder.To,
		Subject: fmt.Sprintf("Reminder: Please Check-In (%s)", reminder.ShiftName),
		Text: fmt.Sprintf("Hello %s, you haven't checked in yet for %s today (%s). Please check in.",
			reminder.WorkerID, reminder.ShiftName, reminder.WorkDate),
		HTML: html,
	})
}

// SendLeaveRequestNotice tells the admin mailbox about a new leave request
func (n *Notifier) SendLeaveRequestNotice(ctx context.Context, notice notification.LeaveRequestNotice) error {
	html, err := n.render("leave_request.html", notice)
	if err != nil {
		return err
	}

	return n.transport.Send(ctx, Message{
		To:      notice.To,
		Subject: fmt.Sprintf("Leave Request from %s", notice.WorkerID),
		Text: fmt.Sprintf("Worker %s requested leave from %s to %s.\nReason: %s",
			notice.WorkerID, notice.FromDate, notice.ToDate, notice.Reason),
		HTML: html,
	})
}

func (n *Notifier) render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return body.String(), nil
}

type logTransport struct{}

// NewLogTransport only logs messages. Used when EMAIL_PROVIDER=none.
func NewLogTransport() Transport {
	return logTransport{}
}

func (logTransport) Send(ctx context.Context, msg Message) error {
	slog.Info("Email delivery disabled, message dropped", "to", msg.To, "subject", msg.Subject)
	return nil
}
