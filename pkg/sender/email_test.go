package sender

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kitforge/mailkit/pkg/mimemsg"
)

func twoParts(text, html string) []mimemsg.Part {
	return []mimemsg.Part{
		mimemsg.NewPart(text, "text/plain", "", ""),
		mimemsg.NewPart(html, "text/html", "", ""),
	}
}

func TestFromMessage_MapsAddressHeadersAndBodies(t *testing.T) {
	t.Parallel()

	msg := mimemsg.NewContainer([]mimemsg.Header{
		{Name: "From", Value: "Jane Doe <jane@example.com>"},
		{Name: "To", Value: "a@example.com, b@example.com"},
		{Name: "Cc", Value: "c@example.com"},
		{Name: "Reply-To", Value: "replies@example.com"},
		{Name: "Subject", Value: "Hi"},
		{Name: "X-Campaign", Value: "onboarding"},
	}, twoParts("plain", "<p>html</p>"), "multipart/alternative")

	email, err := FromMessage(msg)
	require.NoError(t, err)

	require.Equal(t, "Jane Doe <jane@example.com>", email.From)
	require.Equal(t, []string{"<a@example.com>", "<b@example.com>"}, email.To)
	require.Equal(t, []string{"<c@example.com>"}, email.CC)
	require.Equal(t, "replies@example.com", email.ReplyTo)
	require.Equal(t, "Hi", email.Subject)
	require.Equal(t, "plain", email.Text)
	require.Equal(t, "<p>html</p>", email.HTML)
	require.Equal(t, map[string]string{"X-Campaign": "onboarding"}, email.Headers)
}

func TestFromMessage_JoinsDuplicateExtraHeaders(t *testing.T) {
	t.Parallel()

	msg := mimemsg.NewContainer([]mimemsg.Header{
		{Name: "To", Value: "a@example.com"},
		{Name: "X-Tag", Value: "one"},
		{Name: "X-Tag", Value: "two"},
	}, twoParts("t", "h"), "multipart/alternative")

	email, err := FromMessage(msg)
	require.NoError(t, err)
	require.Equal(t, "one, two", email.Headers["X-Tag"])
}

func TestFromMessage_RequiresRecipient(t *testing.T) {
	t.Parallel()

	msg := mimemsg.NewContainer([]mimemsg.Header{
		{Name: "Subject", Value: "Hi"},
	}, twoParts("t", "h"), "multipart/alternative")

	_, err := FromMessage(msg)
	require.ErrorIs(t, err, ErrNoRecipient)
}

func TestFromMessage_RequiresBodyParts(t *testing.T) {
	t.Parallel()

	msg := mimemsg.NewContainer([]mimemsg.Header{
		{Name: "To", Value: "a@example.com"},
	}, nil, "multipart/alternative")

	_, err := FromMessage(msg)
	require.ErrorIs(t, err, ErrNoParts)
}

func TestSplitAddresses_FallsBackOnUnparsableList(t *testing.T) {
	t.Parallel()

	out := splitAddresses("not an rfc5322 list,, still-delivered")
	require.Equal(t, []string{"not an rfc5322 list", "still-delivered"}, out)
}
