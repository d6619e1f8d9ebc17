package mimemsg

// Transfer encodings supported by the serializer.
const (
	EncodingQuotedPrintable = "quoted-printable"
	EncodingBase64          = "base64"
	Encoding7Bit            = "7bit"
	Encoding8Bit            = "8bit"
)

// Part is a single MIME body part: decoded body text plus the content
// metadata needed to serialize it.
type Part struct {
	ContentType      string
	Charset          string
	TransferEncoding string
	Body             string
}

// NewPart creates a body part. Empty charset defaults to UTF-8 and empty
// transfer encoding defaults to quoted-printable, the only combination the
// assemblers in this module produce.
func NewPart(body, contentType, charset, transferEncoding string) Part {
	if charset == "" {
		charset = "UTF-8"
	}
	if transferEncoding == "" {
		transferEncoding = EncodingQuotedPrintable
	}
	return Part{
		ContentType:      contentType,
		Charset:          charset,
		TransferEncoding: transferEncoding,
		Body:             body,
	}
}
