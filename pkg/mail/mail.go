// Package mail delivers transactional email through either the Resend HTTP
// API or a plain SMTP relay.
package mail

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Send when the sender has no credentials.
var ErrNotConfigured = errors.New("mail: not configured")

// Message is a single HTML email.
type Message struct {
	From    string // "Display Name <address>" or a bare address
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender is the interface implemented by mail transports.
type Sender interface {
	// Configured reports whether the credentials needed to send are present.
	Configured() bool
	// Send delivers msg once. There are no retries.
	Send(ctx context.Context, msg Message) error
}
