package sender

import "context"

// Email is a provider-agnostic, fully-prepared email ready for delivery.
type Email struct {
	Headers map[string]string // Additional headers
	Subject string            // Subject line
	HTML    string            // HTML body
	Text    string            // Plain text alternative
	From    string            // Sender (provider default applies when empty)
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// Sender is the minimal interface email providers implement.
type Sender interface {
	// Send delivers an email message. The Email must have at least one
	// recipient. Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}
