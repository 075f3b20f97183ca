package mailer

import "context"

// Email is one outbound message.
type Email struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Sender delivers a single email. Implementations must be safe for
// concurrent use by queue workers.
type Sender interface {
	Send(ctx context.Context, email Email) error
}
