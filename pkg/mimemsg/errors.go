package mimemsg

import "errors"

var (
	// ErrEncodeFailed indicates a part body could not be transfer-encoded.
	ErrEncodeFailed = errors.New("failed to encode part body")

	// ErrUnsupportedEncoding indicates an unknown transfer encoding on a part.
	ErrUnsupportedEncoding = errors.New("unsupported transfer encoding")
)
