package markdown

import "errors"

var (
	// ErrUnsupportedFeature indicates the manifest requests a feature this
	// assembler rejects by contract (attachments, alternatives, attributes).
	ErrUnsupportedFeature = errors.New("unsupported manifest feature")

	// ErrNoSourcePath indicates the manifest has no source entry path.
	ErrNoSourcePath = errors.New("manifest has no source path")

	// ErrNoFieldName indicates a header entry with no field-name key.
	ErrNoFieldName = errors.New("no field name candidates")

	// ErrAmbiguousFieldName indicates a header entry with more than one
	// field-name key.
	ErrAmbiguousFieldName = errors.New("multiple field name candidates")

	// ErrAlternateRenderer indicates a header entry asked for a specific
	// renderer by name. Only disabling rendering is supported.
	ErrAlternateRenderer = errors.New("alternate renderers not supported")

	// ErrHeaderNotText indicates a rendered header value was not valid UTF-8.
	ErrHeaderNotText = errors.New("rendered header value is not valid text")

	// ErrMarkerNotFound indicates a wrapper entry lacks the marker comment.
	ErrMarkerNotFound = errors.New("wrapper marker not found")

	// ErrNoRenderer indicates render_wrapper is set but no renderer is
	// available to render the wrapper template.
	ErrNoRenderer = errors.New("render_wrapper requires a renderer")

	// ErrConvertFailed indicates the Markdown to HTML conversion failed.
	ErrConvertFailed = errors.New("failed to convert markdown")
)
