package render

import "errors"

var (
	// ErrParseFailed indicates the template text could not be parsed.
	ErrParseFailed = errors.New("failed to parse template")

	// ErrRenderFailed indicates template execution failed.
	ErrRenderFailed = errors.New("failed to render template")
)
