// Package mimemsg builds and serializes MIME multipart messages.
//
// The package deliberately models only what mailkit assemblers produce: an
// ordered header block and a flat list of body parts inside one multipart
// container. Nested multiparts, attachments, and per-part custom attributes
// are out of scope; assemblers that need them reject the manifest instead.
//
// Headers are an ordered []Header sequence rather than a map. Manifest order
// is preserved on the wire and duplicate field names pass through unmerged.
//
// Typical construction:
//
//	text := mimemsg.NewPart(body, "text/plain", "UTF-8", mimemsg.EncodingQuotedPrintable)
//	html := mimemsg.NewPart(markup, "text/html", "UTF-8", mimemsg.EncodingQuotedPrintable)
//	msg := mimemsg.NewContainer(headers, []mimemsg.Part{text, html}, "multipart/alternative")
//
//	var buf bytes.Buffer
//	if _, err := msg.WriteTo(&buf); err != nil {
//		return err
//	}
//
// WriteTo emits wire format: CRLF line endings, RFC 2047 Q-encoding for
// non-ASCII header values, quoted-printable (or base64/7bit/8bit) bodies, and
// Date and Message-ID headers generated when the caller supplied none.
package mimemsg
