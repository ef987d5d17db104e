package board

import (
	"context"

	"github.com/jonathan/smartjob/internal/logging"
)

// Email is an outgoing notification.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers notifications to users.
type Notifier interface {
	Notify(ctx context.Context, msg Email) error
}

const (
	shortlistSubject = "You have been shortlisted"
	shortlistBody    = "Congrats! A recruiter shortlisted your application."
)

// LogNotifier records emails in the log instead of sending them.
type LogNotifier struct {
	log *logging.Logger
}

// NewLogNotifier creates a notifier that logs every email at info level.
func NewLogNotifier(log *logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg Email) error {
	n.log.Info("email notification (simulated)", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
