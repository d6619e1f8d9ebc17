package sender

import "errors"

var (
	// ErrNoRecipient indicates the message carries no To header.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoParts indicates the message has no text or html body part.
	ErrNoParts = errors.New("message has no body parts")

	// ErrSendFailed indicates the provider rejected the delivery.
	ErrSendFailed = errors.New("failed to send email")
)
