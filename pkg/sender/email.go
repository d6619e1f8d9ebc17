package sender

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kitforge/mailkit/pkg/mimemsg"
)

// FromMessage projects an assembled MIME message onto the provider-agnostic
// Email shape: address headers become typed fields, the two body parts become
// HTML and Text, and everything else passes through as extra headers.
func FromMessage(m *mimemsg.Message) (*Email, error) {
	email := &Email{Headers: make(map[string]string)}

	for _, h := range m.Headers() {
		switch strings.ToLower(h.Name) {
		case "from":
			email.From = h.Value
		case "to":
			email.To = append(email.To, splitAddresses(h.Value)...)
		case "cc":
			email.CC = append(email.CC, splitAddresses(h.Value)...)
		case "bcc":
			email.BCC = append(email.BCC, splitAddresses(h.Value)...)
		case "reply-to":
			email.ReplyTo = h.Value
		case "subject":
			email.Subject = h.Value
		default:
			if prev, ok := email.Headers[h.Name]; ok {
				email.Headers[h.Name] = prev + ", " + h.Value
			} else {
				email.Headers[h.Name] = h.Value
			}
		}
	}
	if len(email.To) == 0 {
		return nil, ErrNoRecipient
	}

	for _, p := range m.Parts() {
		switch p.ContentType {
		case "text/plain":
			email.Text = p.Body
		case "text/html":
			email.HTML = p.Body
		}
	}
	if email.HTML == "" && email.Text == "" {
		return nil, fmt.Errorf("%w: expected text/plain and text/html parts", ErrNoParts)
	}

	return email, nil
}

// splitAddresses splits an address-list header value. Values that parse per
// RFC 5322 are normalized; anything else falls back to a comma split so
// unusual but working addresses still get through.
func splitAddresses(value string) []string {
	if addrs, err := mail.ParseAddressList(value); err == nil {
		out := make([]string, len(addrs))
		for i, a := range addrs {
			out[i] = a.String()
		}
		return out
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
