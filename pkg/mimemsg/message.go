package mimemsg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/quotedprintable"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Header is a single message header field. Headers are kept as an ordered
// sequence: order is significant and duplicate names are allowed.
type Header struct {
	Name  string
	Value string
}

// Message is an assembled MIME container: an ordered header block plus one or
// more body parts under a single multipart content type.
type Message struct {
	headers     []Header
	parts       []Part
	contentType string
	boundary    string
}

// NewContainer creates a multipart message from prepared headers and parts.
// The header sequence is preserved exactly, including duplicates. A random
// boundary is generated per message.
func NewContainer(headers []Header, parts []Part, contentType string) *Message {
	return &Message{
		headers:     slices.Clone(headers),
		parts:       slices.Clone(parts),
		contentType: contentType,
		boundary:    "=_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
}

// Headers returns the message headers in order.
func (m *Message) Headers() []Header {
	return slices.Clone(m.headers)
}

// Parts returns the body parts in order.
func (m *Message) Parts() []Part {
	return slices.Clone(m.parts)
}

// ContentType returns the container content type, e.g. "multipart/alternative".
func (m *Message) ContentType() string {
	return m.contentType
}

// Boundary returns the generated multipart boundary.
func (m *Message) Boundary() string {
	return m.boundary
}

// HeaderValue returns the first value of the named header and whether it was
// present. Name matching is case-insensitive per RFC 5322.
func (m *Message) HeaderValue(name string) (string, bool) {
	for _, h := range m.headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// WriteTo serializes the message in wire format: CRLF line endings, RFC 2047
// encoding for non-ASCII header values, and transfer-encoded part bodies.
// Date and Message-ID headers are added when the prepared headers lack them.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	for _, h := range m.headers {
		writeHeader(&buf, h.Name, h.Value)
	}
	if _, ok := m.HeaderValue("Date"); !ok {
		writeHeader(&buf, "Date", time.Now().Format(time.RFC1123Z))
	}
	if _, ok := m.HeaderValue("Message-ID"); !ok {
		writeHeader(&buf, "Message-ID", fmt.Sprintf("<%s@mailkit>", uuid.NewString()))
	}
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", fmt.Sprintf("%s; boundary=%q", m.contentType, m.boundary))
	buf.WriteString("\r\n")

	for _, p := range m.parts {
		buf.WriteString("--" + m.boundary + "\r\n")
		writeHeader(&buf, "Content-Type", fmt.Sprintf("%s; charset=%s", p.ContentType, p.Charset))
		writeHeader(&buf, "Content-Transfer-Encoding", p.TransferEncoding)
		buf.WriteString("\r\n")
		if err := writeBody(&buf, p); err != nil {
			return 0, err
		}
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + m.boundary + "--\r\n")

	return buf.WriteTo(w)
}

// Bytes returns the serialized message.
func (m *Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, name, value string) {
	// QEncoding leaves plain ASCII values untouched.
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(mime.QEncoding.Encode("utf-8", value))
	buf.WriteString("\r\n")
}

func writeBody(buf *bytes.Buffer, p Part) error {
	switch p.TransferEncoding {
	case EncodingQuotedPrintable:
		qp := quotedprintable.NewWriter(buf)
		if _, err := io.WriteString(qp, p.Body); err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
		if err := qp.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	case EncodingBase64:
		enc := base64.StdEncoding.EncodeToString([]byte(p.Body))
		for len(enc) > 0 {
			n := min(len(enc), 76)
			buf.WriteString(enc[:n])
			buf.WriteString("\r\n")
			enc = enc[n:]
		}
	case Encoding7Bit, Encoding8Bit:
		normalized := strings.ReplaceAll(p.Body, "\r\n", "\n")
		buf.WriteString(strings.ReplaceAll(normalized, "\n", "\r\n"))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, p.TransferEncoding)
	}
	return nil
}
